package repository

import (
	"context"

	"github.com/joinboard/backend/domain"
)

type SubtaskRepository interface {
	List(ctx context.Context) ([]domain.Subtask, error)
	GetByID(ctx context.Context, id int64) (*domain.Subtask, error)
	Create(ctx context.Context, subtask *domain.Subtask) error
	Update(ctx context.Context, subtask *domain.Subtask) error
	Delete(ctx context.Context, id int64) error
}
