package cataloging

import (
	"errors"
	"fmt"

	"github.com/vfg2006/royalty-manager-api/infrastructure/repository"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
)

// Erros específicos para o cadastro de entidades
var (
	// Erros de validação
	ErrRequiredField     = errors.New("campo obrigatório")
	ErrInvalidField      = errors.New("campo inválido")
	ErrReferenceNotFound = errors.New("entidade relacionada não encontrada")

	// Erros de consulta
	ErrEntityNotFound = errors.New("registro não encontrado")
	ErrEntityInUse    = errors.New("registro ainda referenciado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID        = errors.New("erro ao gerar identificador")
)

// RegistryError é um erro com contexto adicional para o cadastro
type RegistryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Entity  string // Entidade envolvida
	Field   string // Campo que causou o erro (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RegistryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// NewRegistryError cria um novo RegistryError
func NewRegistryError(err error, code, entity, field, details string) *RegistryError {
	return &RegistryError{
		Err:     err,
		Code:    code,
		Entity:  entity,
		Field:   field,
		Details: details,
	}
}

func requiredField(entity, field string) error {
	return NewRegistryError(ErrRequiredField, apiErrors.ErrMissingRequiredData, entity, field, fmt.Sprintf("%s é obrigatório", field))
}

func invalidField(entity, field, details string) error {
	return NewRegistryError(ErrInvalidField, apiErrors.ErrInvalidFormat, entity, field, details)
}

func referenceNotFound(entity, field string) error {
	return NewRegistryError(ErrReferenceNotFound, apiErrors.ErrMissingReference, entity, field, fmt.Sprintf("%s não encontrado", field))
}

func entityNotFound(entity, id string) error {
	return NewRegistryError(ErrEntityNotFound, apiErrors.ErrNotFound, entity, "id", fmt.Sprintf("%s %s não encontrado", entity, id))
}

// fromRepository traduz os erros de persistência para o contexto do cadastro
func fromRepository(err error, entity string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewRegistryError(ErrEntityNotFound, apiErrors.ErrNotFound, entity, "id", err.Error())
	case errors.Is(err, repository.ErrReferenceViolation):
		return NewRegistryError(ErrEntityInUse, apiErrors.ErrReferenceInUse, entity, "", err.Error())
	}
	return NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entity, "", err.Error())
}
