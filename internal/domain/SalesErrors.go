package domain

import (
	"errors"
	"fmt"
)

// Erros de aquisição dos registros de vendas
var (
	ErrMissingRange      = errors.New("both from and to dates are required")
	ErrSourceUnavailable = errors.New("sales source unavailable")
	ErrNetworkOrServer   = errors.New("sales query failed")
)

// Tipos de erro expostos no payload do dashboard
const (
	FetchErrorMissingRange      = "MissingRange"
	FetchErrorSourceUnavailable = "SourceUnavailable"
	FetchErrorNetworkOrServer   = "NetworkOrServer"
	FetchErrorUnknown           = "Unknown"
)

// Mensagens exibidas ao usuário no lugar dos gráficos
const (
	MessageMissingRange      = "Selecione as duas datas para consultar as vendas."
	MessageSourceUnavailable = "Não foi possível carregar os dados de vendas do arquivo local."
	MessageNetworkOrServer   = "Não foi possível consultar as vendas. Tente novamente."
)

// FetchError é um erro de aquisição com o tipo e a causa original
type FetchError struct {
	Err   error // Um dos sentinelas acima
	Cause error
}

// Error implementa a interface error
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
	}
	return e.Err.Error()
}

// Unwrap permite errors.Is tanto no sentinela quanto na causa
func (e *FetchError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewFetchError cria um FetchError
func NewFetchError(kind error, cause error) *FetchError {
	return &FetchError{Err: kind, Cause: cause}
}

// FetchErrorKind classifica um erro de aquisição
func FetchErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrMissingRange):
		return FetchErrorMissingRange
	case errors.Is(err, ErrSourceUnavailable):
		return FetchErrorSourceUnavailable
	case errors.Is(err, ErrNetworkOrServer):
		return FetchErrorNetworkOrServer
	default:
		return FetchErrorUnknown
	}
}

// UserMessage converte um erro de aquisição na mensagem exibida na página
func UserMessage(err error) string {
	switch FetchErrorKind(err) {
	case FetchErrorMissingRange:
		return MessageMissingRange
	case FetchErrorSourceUnavailable:
		return MessageSourceUnavailable
	default:
		return MessageNetworkOrServer
	}
}

// NewDashboardError cria o erro do payload a partir de um erro de aquisição
func NewDashboardError(err error) *DashboardError {
	if err == nil {
		return nil
	}
	return &DashboardError{
		Kind:    FetchErrorKind(err),
		Message: UserMessage(err),
	}
}
