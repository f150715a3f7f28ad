package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoQuery struct {
	Input string
}

func (echoQuery) Type() string { return "test.echo" }

type failCommand struct{}

func (failCommand) Type() string { return "test.fail" }

func TestDispatcher_RoundTrip(t *testing.T) {
	d := New()

	err := Register(d, func(ctx context.Context, q echoQuery) (string, error) {
		return "echo: " + q.Input, nil
	})
	require.NoError(t, err)

	result, err := Execute[echoQuery, string](context.Background(), d, echoQuery{Input: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", result)
}

func TestDispatcher_HandlerNotFound(t *testing.T) {
	d := New()

	_, err := Execute[echoQuery, string](context.Background(), d, echoQuery{Input: "hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandlerNotFound)
	assert.Contains(t, err.Error(), "test.echo")
}

func TestDispatcher_DuplicateRegistration(t *testing.T) {
	d := New()

	handler := func(ctx context.Context, q echoQuery) (string, error) {
		return q.Input, nil
	}

	require.NoError(t, Register(d, handler))

	err := Register(d, handler)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.echo")
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	d := New()

	handler := func(ctx context.Context, q echoQuery) (string, error) {
		return q.Input, nil
	}

	MustRegister(d, handler)
	assert.Panics(t, func() {
		MustRegister(d, handler)
	})
}

func TestDispatcher_HandlerErrorPropagates(t *testing.T) {
	d := New()

	sentinel := errors.New("record not found")
	MustRegister(d, func(ctx context.Context, c failCommand) (*struct{}, error) {
		return nil, sentinel
	})

	_, err := Execute[failCommand, *struct{}](context.Background(), d, failCommand{})
	assert.ErrorIs(t, err, sentinel)
}

func TestDispatcher_ContextReachesHandler(t *testing.T) {
	d := New()

	MustRegister(d, func(ctx context.Context, q echoQuery) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return q.Input, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Execute[echoQuery, string](ctx, d, echoQuery{Input: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
