package usecase

// DomainError: regra de negócio violada. Vira 4xx no handler e nunca é
// retentado.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError: dependência externa falhou. Vira 5xx com mensagem genérica;
// o detalhe fica no log.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// ErrTokenMissing: o callback de SSO chegou sem token na URL. Falha imediata,
// sem chamada de rede.
var ErrTokenMissing = &DomainError{Code: "TOKEN_MISSING", Message: "token não informado"}
