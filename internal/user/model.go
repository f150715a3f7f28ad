package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record as stored, including the password hash. It
// never crosses the system boundary; handlers and tokens only ever see
// Public.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public is the boundary-safe view of an identity. It structurally cannot
// carry the password hash, so stripping the secret is a property of the type
// rather than a field-delete at each call site.
type Public struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public converts the stored record into its boundary-safe view.
func (u *User) Public() Public {
	return Public{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
