package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreativeRepository_Columns(t *testing.T) {
	t.Run("Descrição completa participa da leitura e da escrita", func(t *testing.T) {
		// A descrição precisa sobreviver ao ciclo seed -> banco -> catálogo;
		// sem a coluna nos dois sentidos, o registro volta sem ela.
		assert.Contains(t, creativeColumns, "c.descricao")
		assert.Contains(t, creativeInsertColumns, "descricao")
	})

	t.Run("Listas de leitura e escrita cobrem as mesmas colunas", func(t *testing.T) {
		read := make(map[string]struct{})
		for _, column := range strings.Split(creativeColumns, ", ") {
			read[strings.TrimPrefix(column, "c.")] = struct{}{}
		}

		// id, created_at e updated_at são gerados pelo banco
		assert.Len(t, read, len(creativeInsertColumns)+3)

		for _, column := range creativeInsertColumns {
			assert.Contains(t, read, column)
		}
	})
}
