package authenticating

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator controla o acesso ao dashboard: uma chave de acesso
// compartilhada troca por um token de sessão JWT
type Authenticator interface {
	Login(accessKey string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// Login valida a chave de acesso contra o hash bcrypt da configuração e
// emite o token de sessão
func (s *Service) Login(accessKey string) (string, error) {
	if accessKey == "" {
		return "", NewAuthError(ErrMissingRequiredData, "Chave de acesso é obrigatória")
	}

	if s.cfg.Auth.AccessKeyHash == "" {
		return "", NewAuthError(ErrAccessNotConfigured, "Hash da chave de acesso não configurado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AccessKeyHash), []byte(accessKey)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, "")
	}

	sessionID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	now := time.Now()

	claims := &domain.Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "dashboard",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", err
	}

	logrus.WithField("session_id", sessionID).Info("auth: sessão de dashboard emitida")

	return signed, nil
}

// ValidateToken verifica a assinatura e a expiração do token de sessão
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, "")
	}

	return claims, nil
}
