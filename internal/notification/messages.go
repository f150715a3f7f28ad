package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/clothesshop/client-api/internal/dispatch"
)

// GetUserNotificationsQuery asks for every notification owned by a user.
type GetUserNotificationsQuery struct {
	UserID uuid.UUID
}

func (GetUserNotificationsQuery) Type() string { return "notification.list" }

// MarkNotificationAsReadCommand marks one notification as read, scoped to
// its owner.
type MarkNotificationAsReadCommand struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
}

func (MarkNotificationAsReadCommand) Type() string { return "notification.mark_read" }

// Store is the persistence surface the handlers need; tests swap in fakes.
type Store interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error)
}

// RegisterHandlers wires the notification query and command handlers into
// the dispatcher. Called once during startup.
func RegisterHandlers(d *dispatch.Dispatcher, store Store) {
	dispatch.MustRegister(d, func(ctx context.Context, q GetUserNotificationsQuery) ([]Notification, error) {
		return store.ListByUser(ctx, q.UserID)
	})

	dispatch.MustRegister(d, func(ctx context.Context, c MarkNotificationAsReadCommand) (*Notification, error) {
		return store.MarkRead(ctx, c.NotificationID, c.UserID)
	})
}
