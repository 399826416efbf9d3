// Package subtask orchestrates subtask CRUD.
package subtask

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/joinboard/backend/authz"
	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/repository"
	"github.com/joinboard/backend/usecase"
)

type UseCase struct {
	subtasks repository.SubtaskRepository
	tasks    repository.TaskRepository
	rules    authz.Rules
	activity usecase.ActivityRecorder
	logger   *zap.Logger
}

func New(subtasks repository.SubtaskRepository, tasks repository.TaskRepository, rules authz.Rules, activity usecase.ActivityRecorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		subtasks: subtasks,
		tasks:    tasks,
		rules:    rules,
		activity: activity,
		logger:   logger,
	}
}

// Input is the subtask payload. TaskID is only honored on creation; a subtask
// never moves to another task.
type Input struct {
	TaskID      int64
	Title       string
	IsCompleted bool
}

func (uc *UseCase) List(ctx context.Context) ([]domain.Subtask, error) {
	return uc.subtasks.List(ctx)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Subtask, error) {
	return uc.subtasks.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, in Input) (*domain.Subtask, error) {
	if err := authz.Authorize(actor, authz.VerbWrite, uc.rules.SubtaskList, nil); err != nil {
		return nil, err
	}
	if err := uc.validate(ctx, in, true); err != nil {
		return nil, err
	}

	subtask := &domain.Subtask{
		TaskID:      in.TaskID,
		Title:       in.Title,
		IsCompleted: in.IsCompleted,
	}
	if err := uc.subtasks.Create(ctx, subtask); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionCreate, subtask.ID)
	return subtask, nil
}

func (uc *UseCase) Update(ctx context.Context, actor domain.Actor, id int64, in Input) (*domain.Subtask, error) {
	subtask, err := uc.subtasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.VerbWrite, uc.rules.SubtaskDetail, nil); err != nil {
		return nil, err
	}
	if err := uc.validate(ctx, in, false); err != nil {
		return nil, err
	}

	subtask.Title = in.Title
	subtask.IsCompleted = in.IsCompleted

	if err := uc.subtasks.Update(ctx, subtask); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionUpdate, subtask.ID)
	return subtask, nil
}

// Delete removes a subtask and returns its last state for the response body.
func (uc *UseCase) Delete(ctx context.Context, actor domain.Actor, id int64) (*domain.Subtask, error) {
	subtask, err := uc.subtasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.VerbDelete, uc.rules.SubtaskDetail, nil); err != nil {
		return nil, err
	}

	if err := uc.subtasks.Delete(ctx, id); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionDelete, id)
	return subtask, nil
}

// validate collects field violations; checkTask additionally verifies the
// parent task exists (creation only).
func (uc *UseCase) validate(ctx context.Context, in Input, checkTask bool) error {
	vErr := domain.NewValidationError()

	if strings.TrimSpace(in.Title) == "" {
		vErr.Add("title", "title is required")
	}

	if checkTask {
		if in.TaskID <= 0 {
			vErr.Add("task_id", "task_id is required")
		} else if _, err := uc.tasks.GetByID(ctx, in.TaskID); err != nil {
			if domain.IsDomainError(err, domain.ErrCodeNotFound) {
				vErr.Add("task_id", "the referenced task does not exist")
			} else {
				return err
			}
		}
	}

	return vErr.ErrOrNil()
}

func (uc *UseCase) record(ctx context.Context, actor domain.Actor, action string, id int64) {
	if uc.activity == nil {
		return
	}
	event := usecase.ActivityEvent{
		ActorID:  actor.ID,
		Entity:   "subtask",
		Action:   action,
		EntityID: id,
	}
	if err := uc.activity.Record(ctx, event); err != nil {
		uc.logger.Warn("activity record failed", zap.String("action", action), zap.Error(err))
	}
}
