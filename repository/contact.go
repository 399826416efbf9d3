package repository

import (
	"context"

	"github.com/joinboard/backend/domain"
)

type ContactRepository interface {
	List(ctx context.Context) ([]domain.Contact, error)
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	Create(ctx context.Context, contact *domain.Contact) error
	// Update never touches user_id; contact ownership is immutable.
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id int64) error
	// MissingIDs returns the subset of ids with no matching contact row.
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.Contact, error)
}
