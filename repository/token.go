package repository

import (
	"context"

	"github.com/joinboard/backend/domain"
)

// TokenRepository manages the single persistent token per user.
type TokenRepository interface {
	// GetOrCreate returns the user's token, creating it on first use. The
	// operation is idempotent under concurrent duplicates: the storage-level
	// uniqueness constraint on user_id arbitrates, not application locking.
	GetOrCreate(ctx context.Context, userID int64) (*domain.Token, error)
	FindByKey(ctx context.Context, key string) (*domain.Token, error)
}
