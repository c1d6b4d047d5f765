package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, accessKey string) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(accessKey), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:        "test-secret",
			AccessKeyHash: string(hash),
			TokenTTLHours: 12,
		},
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name      string
		cfg       func(t *testing.T) *config.Config
		accessKey string
		wantedErr error
	}{
		{
			name:      "Chave de acesso correta emite um token",
			cfg:       func(t *testing.T) *config.Config { return authConfig(t, "chave-do-time") },
			accessKey: "chave-do-time",
		},
		{
			name:      "Chave de acesso incorreta é rejeitada",
			cfg:       func(t *testing.T) *config.Config { return authConfig(t, "chave-do-time") },
			accessKey: "chave-errada",
			wantedErr: ErrInvalidCredentials,
		},
		{
			name:      "Chave de acesso vazia é rejeitada",
			cfg:       func(t *testing.T) *config.Config { return authConfig(t, "chave-do-time") },
			accessKey: "",
			wantedErr: ErrMissingRequiredData,
		},
		{
			name: "Hash não configurado bloqueia o login",
			cfg: func(t *testing.T) *config.Config {
				return &config.Config{Auth: config.Auth{Secret: "test-secret"}}
			},
			accessKey: "chave-do-time",
			wantedErr: ErrAccessNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.cfg(t))

			token, err := service.Login(tt.accessKey)

			if tt.wantedErr != nil {
				assert.ErrorIs(t, err, tt.wantedErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := authConfig(t, "chave-do-time")
	service := NewService(cfg)

	t.Run("Token emitido pelo próprio serviço é aceito", func(t *testing.T) {
		token, err := service.Login("chave-do-time")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)

		assert.NoError(t, err)
		assert.NotEmpty(t, claims.SessionID)
		assert.Equal(t, "dashboard", claims.Subject)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{
			SessionID: "forjado",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := forged.SignedString([]byte("outro-segredo"))
		assert.NoError(t, err)

		_, err = service.ValidateToken(signed)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token expirado é rejeitado com erro específico", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{
			SessionID: "expirado",
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		signed, err := expired.SignedString([]byte(cfg.Auth.Secret))
		assert.NoError(t, err)

		_, err = service.ValidateToken(signed)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token malformado é rejeitado", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
