package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds.
const (
	KindArticleLiked    = "article_liked"
	KindArticleComment  = "article_commented"
)

type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Kind      string     `json:"kind"`
	Message   string     `json:"message"`
	ArticleID *uuid.UUID `json:"article_id,omitempty"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
}
