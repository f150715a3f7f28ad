package article

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/clothesshop/client-api/internal/database"
)

var (
	ErrNotFound        = errors.New("article not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Repository handles article, comment and like persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new article
func (r *Repository) Create(ctx context.Context, a *Article) (*Article, error) {
	dba := &database.Article{
		AuthorID:    a.AuthorID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		Categories:  a.Categories,
		IsActive:    a.IsActive,
		ReadingTime: a.ReadingTime,
	}

	_, err := r.db.NewInsert().
		Model(dba).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return mapDBArticleToModel(dba), nil
}

// GetByID retrieves a single article
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	dba := new(database.Article)
	err := r.db.NewSelect().
		Model(dba).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return mapDBArticleToModel(dba), nil
}

// ListActive returns all active articles, newest first
func (r *Repository) ListActive(ctx context.Context) ([]Article, error) {
	var dbas []database.Article
	err := r.db.NewSelect().
		Model(&dbas).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]Article, 0, len(dbas))
	for i := range dbas {
		articles = append(articles, *mapDBArticleToModel(&dbas[i]))
	}
	return articles, nil
}

// Update rewrites an article's editable fields, scoped to its author. An
// article owned by someone else is indistinguishable from a missing one.
func (r *Repository) Update(ctx context.Context, a *Article) (*Article, error) {
	dba := new(database.Article)
	result, err := r.db.NewUpdate().
		Model(dba).
		Set("title = ?", a.Title).
		Set("description = ?", a.Description).
		Set("content = ?", a.Content).
		Set("categories = ?", pgdialect.Array(a.Categories)).
		Set("is_active = ?", a.IsActive).
		Set("reading_time = ?", a.ReadingTime).
		Set("updated_at = NOW()").
		Where("id = ?", a.ID).
		Where("author_id = ?", a.AuthorID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return mapDBArticleToModel(dba), nil
}

// Delete removes an article, scoped to its author
func (r *Repository) Delete(ctx context.Context, id, authorID uuid.UUID) error {
	result, err := r.db.NewDelete().
		Model((*database.Article)(nil)).
		Where("id = ?", id).
		Where("author_id = ?", authorID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func mapDBArticleToModel(dba *database.Article) *Article {
	return &Article{
		ID:          dba.ID,
		AuthorID:    dba.AuthorID,
		Title:       dba.Title,
		Description: dba.Description,
		Content:     dba.Content,
		Categories:  dba.Categories,
		IsActive:    dba.IsActive,
		ReadingTime: dba.ReadingTime,
		CreatedAt:   dba.CreatedAt,
		UpdatedAt:   dba.UpdatedAt,
	}
}
