package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pasetoTestKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewPasetoService_KeyLength(t *testing.T) {
	_, err := NewPasetoService([]byte("too-short"))
	assert.Error(t, err)

	_, err = NewPasetoService(pasetoTestKey)
	assert.NoError(t, err)
}

func TestPasetoService_RoundTrip(t *testing.T) {
	svc, err := NewPasetoService(pasetoTestKey)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.CreateToken(userID, "a@x.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestPasetoService_ExpiredToken(t *testing.T) {
	svc, err := NewPasetoService(pasetoTestKey)
	require.NoError(t, err)

	token, err := svc.CreateToken(uuid.New(), "a@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}

func TestPasetoService_WrongKey(t *testing.T) {
	svc, err := NewPasetoService(pasetoTestKey)
	require.NoError(t, err)

	other, err := NewPasetoService([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	token, err := svc.CreateToken(uuid.New(), "a@x.com", time.Hour)
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
