package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "correct horse battery staple")

	// Hashing the same password twice must produce different salts
	hash2, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	t.Run("matching password", func(t *testing.T) {
		assert.True(t, VerifyPassword(hash, "s3cret-password"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, VerifyPassword(hash, "wrong-password"))
	})

	t.Run("empty password", func(t *testing.T) {
		assert.False(t, VerifyPassword(hash, ""))
	})

	t.Run("malformed hash", func(t *testing.T) {
		assert.False(t, VerifyPassword("not-an-argon2-hash", "s3cret-password"))
		assert.False(t, VerifyPassword("$argon2id$v=19$garbage", "s3cret-password"))
		assert.False(t, VerifyPassword("", "s3cret-password"))
	})
}
