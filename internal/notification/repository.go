package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/clothesshop/client-api/internal/database"
)

var ErrNotFound = errors.New("notification not found")

// Repository handles notification persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a notification for a user.
func (r *Repository) Create(ctx context.Context, userID uuid.UUID, kind, message string, articleID *uuid.UUID) (*Notification, error) {
	dbn := &database.Notification{
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		ArticleID: articleID,
	}

	_, err := r.db.NewInsert().
		Model(dbn).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return mapDBNotificationToModel(dbn), nil
}

// ListByUser returns the user's notifications, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	var dbns []database.Notification
	err := r.db.NewSelect().
		Model(&dbns).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]Notification, 0, len(dbns))
	for i := range dbns {
		notifications = append(notifications, *mapDBNotificationToModel(&dbns[i]))
	}
	return notifications, nil
}

// MarkRead flips the read flag on a single notification, scoped to its
// owner. A notification owned by someone else is indistinguishable from a
// missing one.
func (r *Repository) MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error) {
	dbn := new(database.Notification)
	result, err := r.db.NewUpdate().
		Model(dbn).
		Set("read = ?", true).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return mapDBNotificationToModel(dbn), nil
}

func mapDBNotificationToModel(dbn *database.Notification) *Notification {
	return &Notification{
		ID:        dbn.ID,
		UserID:    dbn.UserID,
		Kind:      dbn.Kind,
		Message:   dbn.Message,
		ArticleID: dbn.ArticleID,
		Read:      dbn.Read,
		CreatedAt: dbn.CreatedAt,
	}
}
