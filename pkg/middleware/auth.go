package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
)

type contextKey string

const (
	// ContextKeySession guarda as claims da sessão do dashboard no contexto
	ContextKeySession contextKey = "session"
)

// rotas acessíveis sem token de sessão
var openPaths = map[string]bool{
	"/healthcheck": true,
	"/v1/login":    true,
}

// AuthMiddleware exige um token de sessão válido em todas as rotas protegidas
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if openPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
