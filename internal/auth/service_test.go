package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clothesshop/client-api/internal/user"
)

type mockUserRepository struct {
	MockGetByEmail func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.MockGetByEmail != nil {
		return m.MockGetByEmail(ctx, email)
	}
	return nil, user.ErrNotFound
}

func newTestService(t *testing.T, users UserRepository) *Service {
	t.Helper()
	tokens, err := NewJWTService([]byte("test-signing-secret"))
	require.NoError(t, err)
	return NewService(users, tokens, time.Hour)
}

func storedUser(t *testing.T, email, password string) *user.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Ada",
		LastName:     "Lovelace",
	}
}

func TestService_Login(t *testing.T) {
	stored := storedUser(t, "a@x.com", "correct")
	repo := &mockUserRepository{
		MockGetByEmail: func(ctx context.Context, email string) (*user.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, user.ErrNotFound
		},
	}
	svc := newTestService(t, repo)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login(context.Background(), "a@x.com", "correct")
		require.NoError(t, err)

		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, stored.ID, result.User.ID)
		assert.Equal(t, "a@x.com", result.User.Email)

		// The serialized identity must carry no secret material
		raw, err := json.Marshal(result)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "password")
		assert.NotContains(t, string(raw), stored.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "a@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@x.com", "correct")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		_, errUnknown := svc.Login(context.Background(), "nobody@x.com", "whatever")
		_, errWrong := svc.Login(context.Background(), "a@x.com", "wrong")
		assert.Equal(t, errUnknown, errWrong)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "", "correct")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Login(context.Background(), "a@x.com", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_LoginTokenRoundTrip(t *testing.T) {
	stored := storedUser(t, "a@x.com", "correct")
	repo := &mockUserRepository{
		MockGetByEmail: func(ctx context.Context, email string) (*user.User, error) {
			return stored, nil
		},
	}

	tokens, err := NewJWTService([]byte("test-signing-secret"))
	require.NoError(t, err)
	svc := NewService(repo, tokens, time.Hour)

	result, err := svc.Login(context.Background(), "a@x.com", "correct")
	require.NoError(t, err)

	// A freshly issued token must verify and resolve to the same identity
	claims, err := tokens.VerifyToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), claims.UserID)
	assert.Equal(t, stored.Email, claims.Email)
}
