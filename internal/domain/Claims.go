package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims representa as claims do token de sessão do dashboard
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
