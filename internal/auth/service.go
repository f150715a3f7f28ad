package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clothesshop/client-api/internal/user"
)

// ErrInvalidCredentials covers both unknown email and wrong password. The two
// cases are never distinguished, in responses or in logs, so callers cannot
// enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserRepository is the slice of the user store the auth boundary reads.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// LoginResult carries the issued token alongside the boundary-safe identity.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        user.Public `json:"user"`
}

// Service validates credentials and issues access tokens. It is read-only
// with respect to the user store.
type Service struct {
	users         UserRepository
	tokens        TokenService
	tokenDuration time.Duration
}

func NewService(users UserRepository, tokens TokenService, tokenDuration time.Duration) *Service {
	return &Service{
		users:         users,
		tokens:        tokens,
		tokenDuration: tokenDuration,
	}
}

// Login validates the supplied credentials and, on success, returns a signed
// access token and the identity with the secret structurally absent.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !VerifyPassword(existing.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(existing.ID, existing.Email, s.tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		User:        existing.Public(),
	}, nil
}
