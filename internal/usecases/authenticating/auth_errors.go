package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrUserDisabled        = errors.New("operador desativado")
	ErrUserNotFound        = errors.New("operador não encontrado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrUserAlreadyExists   = errors.New("operador já cadastrado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrWeakPassword        = errors.New("senha fraca")
	ErrAuthNotConfigured   = errors.New("AUTH_SECRET não configurado")
)

const internalErrorMessage = "Erro interno do servidor"

// AuthError carrega o código da API junto do erro de login ou cadastro de operador
type AuthError struct {
	Err     error
	Code    string
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

// Message é o texto devolvido ao cliente. Erros de banco e internos nunca vazam o erro base.
func (e *AuthError) Message() string {
	if e.Details != "" {
		return e.Details
	}
	if e.Code == apiErrors.ErrInternalServer || e.Code == apiErrors.ErrDatabaseOperation {
		return internalErrorMessage
	}
	return e.Err.Error()
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserNotFound)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
