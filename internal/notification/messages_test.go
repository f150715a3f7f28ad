package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clothesshop/client-api/internal/dispatch"
)

type fakeStore struct {
	notifications []Notification
}

func (f *fakeStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	var owned []Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			owned = append(owned, n)
		}
	}
	return owned, nil
}

func (f *fakeStore) MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error) {
	for i := range f.notifications {
		if f.notifications[i].ID == id && f.notifications[i].UserID == userID {
			f.notifications[i].Read = true
			return &f.notifications[i], nil
		}
	}
	return nil, ErrNotFound
}

func TestRegisterHandlers(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	store := &fakeStore{
		notifications: []Notification{
			{ID: uuid.New(), UserID: owner, Kind: KindArticleLiked, Message: "someone liked your article", CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: owner, Kind: KindArticleComment, Message: "someone commented", CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: other, Kind: KindArticleLiked, Message: "not yours", CreatedAt: time.Now()},
		},
	}

	d := dispatch.New()
	RegisterHandlers(d, store)

	t.Run("list returns only the caller's notifications", func(t *testing.T) {
		got, err := dispatch.Execute[GetUserNotificationsQuery, []Notification](
			context.Background(), d, GetUserNotificationsQuery{UserID: owner},
		)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, n := range got {
			assert.Equal(t, owner, n.UserID)
		}
	})

	t.Run("mark read flips the flag for the owner", func(t *testing.T) {
		target := store.notifications[0]
		updated, err := dispatch.Execute[MarkNotificationAsReadCommand, *Notification](
			context.Background(), d, MarkNotificationAsReadCommand{NotificationID: target.ID, UserID: owner},
		)
		require.NoError(t, err)
		assert.True(t, updated.Read)
		assert.Equal(t, target.ID, updated.ID)
	})

	t.Run("mark read on another user's notification is not found", func(t *testing.T) {
		foreign := store.notifications[2]
		_, err := dispatch.Execute[MarkNotificationAsReadCommand, *Notification](
			context.Background(), d, MarkNotificationAsReadCommand{NotificationID: foreign.ID, UserID: owner},
		)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
