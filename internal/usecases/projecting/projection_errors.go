package projecting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/internal/calculator"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
)

var (
	ErrProjectionNotFound = errors.New("projeção não encontrada")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// ProjectionError é um erro de projeção com o código da API e o campo que o originou
type ProjectionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo da entrada (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProjectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProjectionError) Unwrap() error {
	return e.Err
}

func NewProjectionError(baseErr error, code, field, details string) *ProjectionError {
	return &ProjectionError{
		Err:     baseErr,
		Code:    code,
		Field:   field,
		Details: details,
	}
}

func notFound(id string) error {
	return NewProjectionError(ErrProjectionNotFound, apiErrors.ErrNotFound, "id", fmt.Sprintf("projeção %s não encontrada", id))
}

func missingReference(field, details string) error {
	return NewProjectionError(calculator.ErrMissingReference, apiErrors.ErrMissingReference, field, details)
}

// fromCalculation traduz um erro do calculador para o código da API correspondente
func fromCalculation(err error) error {
	var calcErr *calculator.CalculationError
	if !errors.As(err, &calcErr) {
		return fromRepository(err)
	}

	code := apiErrors.ErrInvalidInput
	switch {
	case errors.Is(err, calculator.ErrInconsistentSplit):
		code = apiErrors.ErrInconsistentSplit
	case errors.Is(err, calculator.ErrMissingReference):
		code = apiErrors.ErrMissingReference
	}

	return NewProjectionError(calcErr, code, calcErr.Field, calcErr.Details)
}

// fromRepository traduz erros de persistência
func fromRepository(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewProjectionError(ErrProjectionNotFound, apiErrors.ErrNotFound, "id", "projeção não encontrada")
	case errors.Is(err, repository.ErrReferenceViolation):
		return NewProjectionError(calculator.ErrMissingReference, apiErrors.ErrMissingReference, "", err.Error())
	}
	return NewProjectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
}
