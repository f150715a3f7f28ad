package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clothesshop/client-api/internal/database"
)

// CreateComment inserts a comment under an article
func (r *Repository) CreateComment(ctx context.Context, articleID, authorID uuid.UUID, content string) (*Comment, error) {
	dbc := &database.Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Content:   content,
	}

	_, err := r.db.NewInsert().
		Model(dbc).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return mapDBCommentToModel(dbc), nil
}

// ListComments returns an article's comments, oldest first
func (r *Repository) ListComments(ctx context.Context, articleID uuid.UUID) ([]Comment, error) {
	var dbcs []database.Comment
	err := r.db.NewSelect().
		Model(&dbcs).
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]Comment, 0, len(dbcs))
	for i := range dbcs {
		comments = append(comments, *mapDBCommentToModel(&dbcs[i]))
	}
	return comments, nil
}

// DeleteComment removes a comment, scoped to its author
func (r *Repository) DeleteComment(ctx context.Context, id, authorID uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*database.Comment)(nil)).
		Where("id = ?", id).
		Where("author_id = ?", authorID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func mapDBCommentToModel(dbc *database.Comment) *Comment {
	return &Comment{
		ID:        dbc.ID,
		ArticleID: dbc.ArticleID,
		AuthorID:  dbc.AuthorID,
		Content:   dbc.Content,
		CreatedAt: dbc.CreatedAt,
	}
}
