package repository

import (
	"context"

	"github.com/joinboard/backend/domain"
)

// UserRepository is the user directory port. Lookups return
// domain.ErrUserNotFound instead of nil users, so callers branch on presence
// rather than on exceptions.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameEmail looks up the exact (username, email) pair used by login.
	FindByUsernameEmail(ctx context.Context, username, email string) (*domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create persists a new user and fills its id and timestamps. A uniqueness
	// violation surfaces as a CONFLICT domain error.
	Create(ctx context.Context, user *domain.User) error
}
