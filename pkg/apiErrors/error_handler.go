package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API do dashboard
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Chave de acesso inválida
	ErrInvalidToken       = "AUTH_002" // Token inválido
	ErrExpiredToken       = "AUTH_003" // Token expirado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do relatório (3000-3999)
	ErrWarehouseConfig       = "CFG_001" // Credencial do warehouse ausente ou inválida
	ErrWarehouseQuery        = "QRY_001" // Warehouse rejeitou a consulta
	ErrWarehouseConnectivity = "NET_001" // Falha de rede/transporte com o warehouse
	ErrWarehouseSchema       = "SCH_001" // View retornou um esquema inesperado

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrSchedulerJob   = "SRV_002" // Erro ao executar job agendado
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrWarehouseConfig:       http.StatusInternalServerError,
	ErrWarehouseQuery:        http.StatusBadGateway,
	ErrWarehouseConnectivity: http.StatusServiceUnavailable,
	ErrWarehouseSchema:       http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrSchedulerJob:          http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
