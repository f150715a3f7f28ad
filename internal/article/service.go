package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clothesshop/client-api/internal/logging"
	"github.com/clothesshop/client-api/internal/notification"
)

// Store is the persistence surface the service needs; tests swap in fakes.
type Store interface {
	Create(ctx context.Context, a *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	ListActive(ctx context.Context) ([]Article, error)
	Update(ctx context.Context, a *Article) (*Article, error)
	Delete(ctx context.Context, id, authorID uuid.UUID) error

	CreateComment(ctx context.Context, articleID, authorID uuid.UUID, content string) (*Comment, error)
	ListComments(ctx context.Context, articleID uuid.UUID) ([]Comment, error)
	DeleteComment(ctx context.Context, id, authorID uuid.UUID) error

	HasLike(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	AddLike(ctx context.Context, articleID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, articleID, userID uuid.UUID) error
	CountLikes(ctx context.Context, articleID uuid.UUID) (int, error)
}

// ArticleCache is the read-through cache for single-article reads.
type ArticleCache interface {
	Get(ctx context.Context, id uuid.UUID) (*Article, error)
	Set(ctx context.Context, a *Article) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// Notifier creates notifications for article owners.
type Notifier interface {
	Create(ctx context.Context, userID uuid.UUID, kind, message string, articleID *uuid.UUID) (*notification.Notification, error)
}

// Service holds the article business operations. Reads of hot articles go
// through the cache; likes and comments notify the article owner.
type Service struct {
	store    Store
	cache    ArticleCache
	notifier Notifier
	logger   *logging.Logger
}

func NewService(store Store, cache ArticleCache, notifier Notifier, logger *logging.Logger) *Service {
	return &Service{
		store:    store,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// List returns all active articles.
func (s *Service) List(ctx context.Context) ([]Article, error) {
	return s.store.ListActive(ctx)
}

// Get returns one article, consulting the cache first. Cache failures are
// logged and fall back to the store.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn("article cache read failed", "article_id", id, "error", err.Error())
	}
	if cached != nil {
		return cached, nil
	}

	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, a); err != nil {
		s.logger.Warn("article cache write failed", "article_id", id, "error", err.Error())
	}

	return a, nil
}

// Create stores a new article for the author.
func (s *Service) Create(ctx context.Context, a *Article) (*Article, error) {
	return s.store.Create(ctx, a)
}

// Update rewrites an article's fields, scoped to its author, and drops the
// cached copy.
func (s *Service) Update(ctx context.Context, a *Article) (*Article, error) {
	updated, err := s.store.Update(ctx, a)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, a.ID); err != nil {
		s.logger.Warn("article cache invalidation failed", "article_id", a.ID, "error", err.Error())
	}

	return updated, nil
}

// Delete removes an article, scoped to its author.
func (s *Service) Delete(ctx context.Context, id, authorID uuid.UUID) error {
	if err := s.store.Delete(ctx, id, authorID); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("article cache invalidation failed", "article_id", id, "error", err.Error())
	}

	return nil
}

// AddComment stores a comment and notifies the article owner. Commenting on
// your own article produces no notification.
func (s *Service) AddComment(ctx context.Context, articleID, authorID uuid.UUID, content string) (*Comment, error) {
	a, err := s.store.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	comment, err := s.store.CreateComment(ctx, articleID, authorID, content)
	if err != nil {
		return nil, err
	}

	if a.AuthorID != authorID {
		message := fmt.Sprintf("Someone commented on your article %q", a.Title)
		if _, err := s.notifier.Create(ctx, a.AuthorID, notification.KindArticleComment, message, &articleID); err != nil {
			// The comment itself succeeded; a lost notification is not fatal
			s.logger.Warn("failed to create comment notification", "article_id", articleID, "error", err.Error())
		}
	}

	return comment, nil
}

// ListComments returns an article's comments.
func (s *Service) ListComments(ctx context.Context, articleID uuid.UUID) ([]Comment, error) {
	if _, err := s.store.GetByID(ctx, articleID); err != nil {
		return nil, err
	}
	return s.store.ListComments(ctx, articleID)
}

// DeleteComment removes a comment, scoped to its author.
func (s *Service) DeleteComment(ctx context.Context, id, authorID uuid.UUID) error {
	return s.store.DeleteComment(ctx, id, authorID)
}

// ToggleLike flips the caller's like on an article and returns the new
// state. A fresh like notifies the article owner; self-likes don't.
func (s *Service) ToggleLike(ctx context.Context, articleID, userID uuid.UUID) (*LikeState, error) {
	a, err := s.store.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	liked, err := s.store.HasLike(ctx, articleID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.store.RemoveLike(ctx, articleID, userID); err != nil {
			return nil, err
		}
	} else {
		if err := s.store.AddLike(ctx, articleID, userID); err != nil {
			return nil, err
		}

		if a.AuthorID != userID {
			message := fmt.Sprintf("Someone liked your article %q", a.Title)
			if _, err := s.notifier.Create(ctx, a.AuthorID, notification.KindArticleLiked, message, &articleID); err != nil {
				s.logger.Warn("failed to create like notification", "article_id", articleID, "error", err.Error())
			}
		}
	}

	count, err := s.store.CountLikes(ctx, articleID)
	if err != nil {
		return nil, err
	}

	return &LikeState{
		ArticleID: articleID,
		Liked:     !liked,
		Count:     count,
	}, nil
}
