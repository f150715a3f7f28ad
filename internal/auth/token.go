package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clothesshop/client-api/internal/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims is the typed claims set carried by an access token: the
// subject's stable identifier and email plus the validity window. No dynamic
// payloads.
type TokenClaims struct {
	UserID    string    `json:"user_id"` // UUID stored as string in token
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// TokenService defines the interface for token creation and validation.
// Implementations include JWTService (HS256) and PasetoService (v4.local).
type TokenService interface {
	CreateToken(userID uuid.UUID, email string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// NewTokenService builds the TokenService named by the configured driver.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	switch cfg.TokenDriver {
	case config.TokenDriverJWT:
		return NewJWTService(cfg.SigningSecret)
	case config.TokenDriverPaseto:
		return NewPasetoService(cfg.SigningSecret)
	default:
		return nil, fmt.Errorf("unknown token driver %q", cfg.TokenDriver)
	}
}
