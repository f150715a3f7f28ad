// Package dispatch is a small mediator: typed messages are routed to exactly
// one registered handler. Registration is explicit and statically typed;
// there is no runtime discovery.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrHandlerNotFound is returned when no handler is registered for a message
// type.
var ErrHandlerNotFound = errors.New("no handler registered for message type")

// Message is any command or query routed through the dispatcher. Type returns
// a stable routing key, unique per message type.
type Message interface {
	Type() string
}

// HandlerFunc processes one message type and produces its result.
type HandlerFunc[M Message, R any] func(ctx context.Context, msg M) (R, error)

// Dispatcher routes messages to handlers. Registration happens during
// startup wiring; Execute is safe for concurrent use afterwards.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]func(ctx context.Context, msg Message) (any, error)
}

func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]func(ctx context.Context, msg Message) (any, error)),
	}
}

// Register binds a handler to the message type M. Registering the same
// message type twice is a wiring bug and fails.
func Register[M Message, R any](d *Dispatcher, handler HandlerFunc[M, R]) error {
	var zero M
	key := zero.Type()

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[key]; exists {
		return fmt.Errorf("handler already registered for %q", key)
	}

	d.handlers[key] = func(ctx context.Context, msg Message) (any, error) {
		typed, ok := msg.(M)
		if !ok {
			return nil, fmt.Errorf("message type mismatch for %q", key)
		}
		return handler(ctx, typed)
	}

	return nil
}

// MustRegister is Register for startup wiring where a duplicate registration
// is fatal.
func MustRegister[M Message, R any](d *Dispatcher, handler HandlerFunc[M, R]) {
	if err := Register(d, handler); err != nil {
		panic(err)
	}
}

// Execute routes msg to its handler and returns the typed result. Handler
// failures propagate unchanged.
func Execute[M Message, R any](ctx context.Context, d *Dispatcher, msg M) (R, error) {
	var zero R

	d.mu.RLock()
	handler, ok := d.handlers[msg.Type()]
	d.mu.RUnlock()

	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrHandlerNotFound, msg.Type())
	}

	result, err := handler(ctx, msg)
	if err != nil {
		return zero, err
	}

	typed, ok := result.(R)
	if !ok {
		return zero, fmt.Errorf("result type mismatch for %q", msg.Type())
	}

	return typed, nil
}
