package calculator

import (
	"errors"
	"fmt"
)

// Taxonomia de erros do cálculo de projeções
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInconsistentSplit = errors.New("inconsistent percentage split")
	ErrMissingReference  = errors.New("missing reference")
)

// CalculationError é um erro de cálculo com o campo que o originou, usado para
// exibir a mensagem junto ao campo do formulário
type CalculationError struct {
	Err     error  // Erro base
	Field   string // Campo da entrada que causou o erro
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CalculationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s: %s", e.Err.Error(), e.Field, e.Details)
}

// Unwrap retorna o erro subjacente
func (e *CalculationError) Unwrap() error {
	return e.Err
}

func invalidInput(field, details string) error {
	return &CalculationError{Err: ErrInvalidInput, Field: field, Details: details}
}

func inconsistentSplit(field, details string) error {
	return &CalculationError{Err: ErrInconsistentSplit, Field: field, Details: details}
}

func missingReference(field, details string) error {
	return &CalculationError{Err: ErrMissingReference, Field: field, Details: details}
}
