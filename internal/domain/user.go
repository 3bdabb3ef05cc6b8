package domain

import (
	"context"
	"time"
)

// User represents a registered visitor. Name and linked tasting follow the
// backend DTO field names ("nome", "Idcata").
// swagger:model User
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"telefono,omitempty"`
	Status       int    `json:"status"`
	Gender       string `json:"genero,omitempty"`
	ExperienceID int    `json:"Idcata,omitempty"`
}

// UserPatch carries the mutable fields of a user update.
type UserPatch struct {
	Name         *string `json:"nome,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"telefono,omitempty"`
	Status       *int    `json:"status,omitempty"`
	ExperienceID *int    `json:"Idcata,omitempty"`
}

// UserRepository defines backend access for users.
type UserRepository interface {
	List(ctx context.Context) ([]*User, error)
	GetByExperienceID(ctx context.Context, experienceID int) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, id int, patch UserPatch) (*User, error)
}

// TokenIssuer issues verification tokens for a user who passed the email
// check. The token only records that the check happened; it is a UX
// confirmation gate, not an authentication credential.
type TokenIssuer interface {
	Issue(userID int, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a verification token and returns the user ID it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (userID int, err error)
}
