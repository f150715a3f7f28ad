package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the persistence model for client accounts. Feature packages map it
// to their own domain types; the password hash never leaves the mapping layer
// except through user.User.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	FirstName    string    `bun:"first_name"`
	LastName     string    `bun:"last_name"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:now()"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:now()"`
}

// Article is the persistence model for blog-style content.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	AuthorID    uuid.UUID `bun:"author_id,type:uuid,notnull"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description"`
	Content     string    `bun:"content"`
	Categories  []string  `bun:"categories,array"`
	IsActive    bool      `bun:"is_active,notnull,default:true"`
	ReadingTime int       `bun:"reading_time"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:now()"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:now()"`
}

// Comment is the persistence model for article comments.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:c"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	ArticleID uuid.UUID `bun:"article_id,type:uuid,notnull"`
	AuthorID  uuid.UUID `bun:"author_id,type:uuid,notnull"`
	Content   string    `bun:"content,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:now()"`
}

// ArticleLike records one user's like of one article. The (article_id,
// user_id) pair is unique; a like is toggled by insert/delete.
type ArticleLike struct {
	bun.BaseModel `bun:"table:article_likes,alias:al"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	ArticleID uuid.UUID `bun:"article_id,type:uuid,notnull,unique:article_user_like"`
	UserID    uuid.UUID `bun:"user_id,type:uuid,notnull,unique:article_user_like"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:now()"`
}

// Notification is the persistence model for user notifications.
type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:n"`

	ID        uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID    uuid.UUID  `bun:"user_id,type:uuid,notnull"`
	Kind      string     `bun:"kind,notnull"`
	Message   string     `bun:"message,notnull"`
	ArticleID *uuid.UUID `bun:"article_id,type:uuid"`
	Read      bool       `bun:"read,notnull,default:false"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:now()"`
}
