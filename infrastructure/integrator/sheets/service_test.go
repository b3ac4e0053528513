package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	clientmocks "github.com/vfg2006/creative-dashboard-api/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/vfg2006/creative-dashboard-api/internal/config"
	"github.com/vfg2006/creative-dashboard-api/internal/domain"
	"github.com/vfg2006/creative-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestSheetsIntegrator_FetchCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)

	log.SetupTestLogger()
	service := New(&config.Config{}, mockClient, log.L)

	t.Run("Linhas da grade viram criativos, pulando o cabeçalho", func(t *testing.T) {
		mockClient.EXPECT().FetchGrid().Return([][]string{
			{"Nome", "Nicho", "Mecanismo", "Tempo Ativo"},
			{"Criativo A", "Diabetes", "VSL com depoimento médico", "12 dias"},
			{"Criativo B", "Emagrecimento", "VSL curta", "3 dias"},
		}, nil)

		creatives, err := service.FetchCreatives()

		assert.NoError(t, err)
		assert.Len(t, creatives, 2)

		assert.Equal(t, 1, creatives[0].ID)
		assert.Equal(t, "Criativo A", creatives[0].Name)
		assert.Equal(t, "Diabetes", creatives[0].Niche)
		// A terceira coluna da planilha é o mecanismo do criativo
		assert.Equal(t, "VSL com depoimento médico", creatives[0].Mechanism)
		assert.Equal(t, "12 dias", creatives[0].ActiveTime)
		assert.Equal(t, domain.NicheColor("Diabetes"), creatives[0].Color)

		assert.Equal(t, 2, creatives[1].ID)
		assert.Equal(t, "Criativo B", creatives[1].Name)
		assert.Equal(t, "VSL curta", creatives[1].Mechanism)
	})

	t.Run("Células vazias recebem os valores padrão", func(t *testing.T) {
		mockClient.EXPECT().FetchGrid().Return([][]string{
			{"Nome", "Nicho", "Mecanismo", "Tempo Ativo"},
			{"", "", "", ""},
			{"Criativo C"},
		}, nil)

		creatives, err := service.FetchCreatives()

		assert.NoError(t, err)
		// A linha totalmente vazia é descartada; a parcial ganha padrões
		assert.Len(t, creatives, 1)
		assert.Equal(t, "Criativo C", creatives[0].Name)
		assert.Equal(t, domain.NicheOther, creatives[0].Niche)
		assert.Equal(t, "Sem descrição", creatives[0].Mechanism)
		assert.Equal(t, "0 horas", creatives[0].ActiveTime)
	})

	t.Run("Grade só com cabeçalho é fonte vazia", func(t *testing.T) {
		mockClient.EXPECT().FetchGrid().Return([][]string{
			{"Nome", "Nicho", "Mecanismo", "Tempo Ativo"},
		}, nil)

		_, err := service.FetchCreatives()

		assert.ErrorIs(t, err, domain.ErrSourceEmpty)
	})

	t.Run("Falha do cliente sobe classificada", func(t *testing.T) {
		mockClient.EXPECT().
			FetchGrid().
			Return(nil, domain.WrapSource(domain.ErrSourceUnreachable, assert.AnError))

		_, err := service.FetchCreatives()

		assert.ErrorIs(t, err, domain.ErrSourceUnreachable)
	})
}
