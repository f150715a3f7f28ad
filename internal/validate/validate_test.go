package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signInForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestStruct(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		err := Struct(signInForm{Email: "a@x.com", Password: "longenough"})
		assert.NoError(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		err := Struct(signInForm{})
		require.Error(t, err)

		ve := AsError(err)
		require.NotNil(t, ve)
		assert.Equal(t, "is required", ve.Fields["email"])
		assert.Equal(t, "is required", ve.Fields["password"])
	})

	t.Run("bad email", func(t *testing.T) {
		err := Struct(signInForm{Email: "not-an-email", Password: "longenough"})
		require.Error(t, err)

		ve := AsError(err)
		require.NotNil(t, ve)
		assert.Equal(t, "must be a valid email address", ve.Fields["email"])
		assert.NotContains(t, ve.Fields, "password")
	})

	t.Run("too short", func(t *testing.T) {
		err := Struct(signInForm{Email: "a@x.com", Password: "short"})
		require.Error(t, err)

		ve := AsError(err)
		require.NotNil(t, ve)
		assert.Equal(t, "must be at least 8 characters", ve.Fields["password"])
	})
}

func TestError_Message(t *testing.T) {
	err := Struct(signInForm{Email: "a@x.com", Password: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password: is required")
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(errors.New("plain")))
	assert.Nil(t, AsError(nil))
}
