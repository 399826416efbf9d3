package repository

import (
	"context"

	"github.com/joinboard/backend/domain"
)

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	// Create persists the task together with its contact assignments.
	Create(ctx context.Context, task *domain.Task) error
	// Update replaces scalar fields and the full contact assignment set.
	Update(ctx context.Context, task *domain.Task) error
	// Delete removes the task; subtasks and assignments go with it (cascade).
	Delete(ctx context.Context, id int64) error
	// AssignContacts adds contacts to a task, skipping ones already assigned.
	AssignContacts(ctx context.Context, taskID int64, contactIDs []int64) error
}
