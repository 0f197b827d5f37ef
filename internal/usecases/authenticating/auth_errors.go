package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserAlreadyExists  = errors.New("usuário já existe")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrNoAdminPrivileges  = errors.New("apenas administradores podem realizar esta ação")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	ErrWeakPassword = errors.New("senha fraca")
	ErrSamePassword = errors.New("nova senha deve ser diferente da atual")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega o código da API e, quando houver, o usuário envolvido
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indica falha de login que não deve revelar qual dado estava errado
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled)
}

func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrNoAdminPrivileges)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

func databaseError(userID int, err error) *AuthError {
	return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
}

func userNotFound(userID int, details string) *AuthError {
	return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, details)
}

func weakPassword(details string) *AuthError {
	return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, details)
}
