package domain

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// Taxonomia de erros do pipeline de relatório
var (
	// Credencial do warehouse ausente, malformada ou rejeitada
	ErrConfig = errors.New("credencial do warehouse ausente ou inválida")
	// O warehouse recebeu a consulta e a rejeitou (sintaxe, permissão)
	ErrQuery = errors.New("o warehouse rejeitou a consulta")
	// Falha de rede ou de transporte antes de uma resposta do warehouse
	ErrConnectivity = errors.New("falha de comunicação com o warehouse")
	// A view retornou colunas ou tipos diferentes do contrato esperado
	ErrSchema = errors.New("a view de vendas retornou um esquema inesperado")
)

// ReportError é um erro com contexto adicional do pipeline de relatório
type ReportError struct {
	Err     error  // Erro base da taxonomia
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo erro de relatório com o código de API derivado
// do erro base
func NewReportError(baseErr error, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    ReportErrorCode(baseErr),
		Details: details,
	}
}

// ReportErrorCode retorna o código de API correspondente ao erro da taxonomia
func ReportErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrConfig):
		return apiErrors.ErrWarehouseConfig
	case errors.Is(err, ErrQuery):
		return apiErrors.ErrWarehouseQuery
	case errors.Is(err, ErrConnectivity):
		return apiErrors.ErrWarehouseConnectivity
	case errors.Is(err, ErrSchema):
		return apiErrors.ErrWarehouseSchema
	default:
		return apiErrors.ErrInternalServer
	}
}

// IsRetryable indica se o erro é transitório e pode ser tentado novamente.
// Apenas falhas de conectividade entram nessa categoria; erros de consulta,
// esquema e configuração são determinísticos.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConnectivity)
}
