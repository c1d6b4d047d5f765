package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// Tipos de erros de autenticação personalizados
var (
	ErrInvalidCredentials  = errors.New("chave de acesso inválida")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrAccessNotConfigured = errors.New("acesso ao dashboard não configurado")
)

// códigos de API por erro base
var apiCodes = map[error]string{
	ErrInvalidCredentials:  apiErrors.ErrInvalidCredentials,
	ErrInvalidToken:        apiErrors.ErrInvalidToken,
	ErrExpiredToken:        apiErrors.ErrExpiredToken,
	ErrMissingRequiredData: apiErrors.ErrMissingRequiredData,
	ErrAccessNotConfigured: apiErrors.ErrInternalServer,
}

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, details string) *AuthError {
	code, ok := apiCodes[baseErr]
	if !ok {
		code = apiErrors.ErrInternalServer
	}

	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsAuthorizationError verifica se o erro está relacionado ao token de sessão
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}
