package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clothesshop/client-api/internal/database"
)

// HasLike reports whether the user already likes the article
func (r *Repository) HasLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*database.ArticleLike)(nil)).
		Where("article_id = ?", articleID).
		Where("user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return count > 0, nil
}

// AddLike records a like
func (r *Repository) AddLike(ctx context.Context, articleID, userID uuid.UUID) error {
	dbl := &database.ArticleLike{
		ArticleID: articleID,
		UserID:    userID,
	}

	_, err := r.db.NewInsert().
		Model(dbl).
		On("CONFLICT (article_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

// RemoveLike removes a like
func (r *Repository) RemoveLike(ctx context.Context, articleID, userID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*database.ArticleLike)(nil)).
		Where("article_id = ?", articleID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	return nil
}

// CountLikes returns an article's like count
func (r *Repository) CountLikes(ctx context.Context, articleID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*database.ArticleLike)(nil)).
		Where("article_id = ?", articleID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
