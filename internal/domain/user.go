package domain

import (
	"context"
	"time"
)

// RoleUser is the role assigned to every account created through
// registration.
const RoleUser = "user"

// User represents a registered account. Email and username are each
// globally unique; PasswordHash must never appear in an API response.
type User struct {
	ID           int64
	Email        string
	Username     string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
