package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// LoginRequest é o corpo esperado pelo login do dashboard
type LoginRequest struct {
	AccessKey string `json:"access_key"`
}

// LoginResponse devolve o token de sessão emitido
type LoginResponse struct {
	Token string `json:"token"`
}

// Login troca a chave de acesso compartilhada do dashboard por um token de sessão
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		token, err := service.Login(request.AccessKey)
		if err != nil {
			logger.WithError(err).Warn("login: tentativa de acesso recusada")

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.Info("login: sessão de dashboard emitida")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(LoginResponse{Token: token}); err != nil {
			logger.WithError(err).Error("login: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
