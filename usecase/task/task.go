// Package task orchestrates task CRUD and contact assignment.
package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/joinboard/backend/authz"
	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/repository"
	"github.com/joinboard/backend/usecase"
)

type UseCase struct {
	tasks    repository.TaskRepository
	contacts repository.ContactRepository
	rules    authz.Rules
	activity usecase.ActivityRecorder
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, contacts repository.ContactRepository, rules authz.Rules, activity usecase.ActivityRecorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		contacts: contacts,
		rules:    rules,
		activity: activity,
		logger:   logger,
	}
}

// Input is the full task payload. DueDate stays a string until validation so
// format errors land in the same field→message map as everything else.
type Input struct {
	Title       string
	Description string
	Category    string
	DueDate     string
	Priority    string
	State       string
	ContactIDs  []int64
}

// Detail pairs a task with its resolved contact assignments for serialization.
type Detail struct {
	Task     domain.Task
	Contacts []domain.Contact
}

func (uc *UseCase) List(ctx context.Context) ([]Detail, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]Detail, 0, len(tasks))
	for _, t := range tasks {
		contacts, err := uc.contacts.ListByTask(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, Detail{Task: t, Contacts: contacts})
	}
	return details, nil
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*Detail, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contacts, err := uc.contacts.ListByTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{Task: *task, Contacts: contacts}, nil
}

func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, in Input) (*Detail, error) {
	if err := authz.Authorize(actor, authz.VerbWrite, uc.rules.TaskList, nil); err != nil {
		return nil, err
	}

	dueDate, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		DueDate:     dueDate,
		Priority:    in.Priority,
		State:       in.State,
		ContactIDs:  in.ContactIDs,
	}

	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionCreate, task.ID)
	return uc.Get(ctx, task.ID)
}

func (uc *UseCase) Update(ctx context.Context, actor domain.Actor, id int64, in Input) (*Detail, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.VerbWrite, uc.rules.TaskDetail, nil); err != nil {
		return nil, err
	}

	dueDate, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	task.Title = in.Title
	task.Description = in.Description
	task.Category = in.Category
	task.DueDate = dueDate
	task.Priority = in.Priority
	if in.State != "" {
		task.State = in.State
	}
	task.ContactIDs = in.ContactIDs

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionUpdate, task.ID)
	return uc.Get(ctx, task.ID)
}

func (uc *UseCase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if _, err := uc.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.VerbDelete, uc.rules.TaskDetail, nil); err != nil {
		return err
	}

	// Subtasks and contact assignments cascade at the storage layer.
	if err := uc.tasks.Delete(ctx, id); err != nil {
		return err
	}

	uc.record(ctx, actor, usecase.ActionDelete, id)
	return nil
}

// ListContacts returns the contacts assigned to a task.
func (uc *UseCase) ListContacts(ctx context.Context, taskID int64) ([]domain.Contact, error) {
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return uc.contacts.ListByTask(ctx, taskID)
}

// AssignContacts adds contacts to an existing task.
func (uc *UseCase) AssignContacts(ctx context.Context, actor domain.Actor, taskID int64, contactIDs []int64) (*Detail, error) {
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.VerbWrite, uc.rules.TaskDetail, nil); err != nil {
		return nil, err
	}

	vErr := domain.NewValidationError()
	if len(contactIDs) == 0 {
		vErr.Add("contacts_ids", "at least one contact id is required")
	}
	if err := uc.checkContactsExist(ctx, contactIDs, vErr); err != nil {
		return nil, err
	}
	if err := vErr.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := uc.tasks.AssignContacts(ctx, taskID, contactIDs); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionAssignContacts, taskID)
	return uc.Get(ctx, taskID)
}

func (uc *UseCase) record(ctx context.Context, actor domain.Actor, action string, id int64) {
	if uc.activity == nil {
		return
	}
	event := usecase.ActivityEvent{
		ActorID:  actor.ID,
		Entity:   "task",
		Action:   action,
		EntityID: id,
	}
	if err := uc.activity.Record(ctx, event); err != nil {
		uc.logger.Warn("activity record failed", zap.String("action", action), zap.Error(err))
	}
}

func (uc *UseCase) checkContactsExist(ctx context.Context, ids []int64, vErr *domain.ValidationError) error {
	if len(ids) == 0 {
		return nil
	}
	missing, err := uc.contacts.MissingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		vErr.Add("contacts_ids", "one or more contact ids do not exist")
	}
	return nil
}

// dateLayout is the wire format for due dates.
const dateLayout = "2006-01-02"

func parseDueDate(raw string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, raw)
	return parsed, err == nil
}
