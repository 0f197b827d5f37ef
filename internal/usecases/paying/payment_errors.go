package paying

import (
	"errors"
	"fmt"

	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
)

// Erros específicos para solicitações de pagamento
var (
	ErrPaymentRequestNotFound = errors.New("solicitação de pagamento não encontrada")
	ErrInvalidAmount          = errors.New("valor da solicitação inválido")
	ErrArtistNotFound         = errors.New("artista não encontrado")
	ErrInvalidStatus          = errors.New("status inválido")
	ErrStatusChanged          = errors.New("status alterado por outra operação")
	ErrDatabaseOperation      = errors.New("erro ao realizar operação no banco de dados")
)

// PaymentError carrega o código de API e o campo envolvido
type PaymentError struct {
	Err     error
	Code    string
	Field   string
	Details string
}

func (e *PaymentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func NewPaymentError(err error, code, field, details string) *PaymentError {
	return &PaymentError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}

// fromTransition traduz os erros da máquina de estados do domínio
func fromTransition(err error, from, to domain.PaymentRequestStatus) error {
	switch {
	case errors.Is(err, domain.ErrJustificationRequired):
		return NewPaymentError(err, apiErrors.ErrJustificationRequired, "justification", "justificativa obrigatória para rejeitar")
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return NewPaymentError(err, apiErrors.ErrInvalidTransition, "status", fmt.Sprintf("%s -> %s", from, to))
	}
	return NewPaymentError(err, apiErrors.ErrInternalServer, "", "")
}

func databaseError(err error) error {
	return NewPaymentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
}
