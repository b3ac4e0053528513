package domain

import "github.com/pkg/errors"

// Categorias de falha dos adaptadores de fonte de dados. Nenhuma delas chega
// ao consumidor final: a política de reconciliação trata cada uma caindo para
// o próximo nível de fonte, e o toggle de salvo faz rollback local.
var (
	// ErrSourceUnreachable indica falha de rede/conectividade com a fonte.
	ErrSourceUnreachable = errors.New("fonte de dados inacessível")

	// ErrSourceEmpty indica fonte acessível porém sem registros.
	ErrSourceEmpty = errors.New("fonte de dados sem registros")

	// ErrParseFailure indica resposta malformada da fonte.
	ErrParseFailure = errors.New("resposta da fonte malformada")

	// ErrPersistenceFailure indica escrita rejeitada pelo banco.
	ErrPersistenceFailure = errors.New("falha ao persistir alteração")
)

type sourceError struct {
	kind  error
	cause error
}

func (e *sourceError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *sourceError) Is(target error) bool {
	return target == e.kind
}

func (e *sourceError) Unwrap() error {
	return e.cause
}

// WrapSource classifica um erro de adaptador com uma das categorias acima,
// preservando a causa original. errors.Is(err, kind) passa a responder pela
// categoria, o que permite à política escolher o próximo nível de fallback.
func WrapSource(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return &sourceError{kind: kind, cause: cause}
}
