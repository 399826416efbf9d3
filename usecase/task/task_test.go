package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joinboard/backend/authz"
	"github.com/joinboard/backend/domain"
)

type fakeTaskRepo struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func (r *fakeTaskRepo) List(_ context.Context) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	if t, ok := r.tasks[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *fakeTaskRepo) Create(_ context.Context, task *domain.Task) error {
	task.ID = r.nextID
	r.nextID++
	if task.State == "" {
		task.State = domain.TaskStateTodo
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) AssignContacts(_ context.Context, taskID int64, contactIDs []int64) error {
	task, ok := r.tasks[taskID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	existing := make(map[int64]bool, len(task.ContactIDs))
	for _, id := range task.ContactIDs {
		existing[id] = true
	}
	for _, id := range contactIDs {
		if !existing[id] {
			task.ContactIDs = append(task.ContactIDs, id)
		}
	}
	return nil
}

type fakeContactRepo struct {
	contacts map[int64]domain.Contact
}

func newFakeContactRepo(ids ...int64) *fakeContactRepo {
	r := &fakeContactRepo{contacts: make(map[int64]domain.Contact)}
	for _, id := range ids {
		r.contacts[id] = domain.Contact{ID: id, UserID: 1}
	}
	return r
}

func (r *fakeContactRepo) List(_ context.Context) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, c := range r.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeContactRepo) GetByID(_ context.Context, id int64) (*domain.Contact, error) {
	if c, ok := r.contacts[id]; ok {
		return &c, nil
	}
	return nil, domain.ErrContactNotFound
}

func (r *fakeContactRepo) Create(_ context.Context, _ *domain.Contact) error { return nil }
func (r *fakeContactRepo) Update(_ context.Context, _ *domain.Contact) error { return nil }
func (r *fakeContactRepo) Delete(_ context.Context, _ int64) error           { return nil }

func (r *fakeContactRepo) MissingIDs(_ context.Context, ids []int64) ([]int64, error) {
	var missing []int64
	for _, id := range ids {
		if _, ok := r.contacts[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *fakeContactRepo) ListByTask(_ context.Context, _ int64) ([]domain.Contact, error) {
	return nil, nil
}

func staffActor() domain.Actor {
	return domain.Actor{ID: 7, Username: "staffer", IsStaff: true, Authenticated: true}
}

func superuserActor() domain.Actor {
	return domain.Actor{ID: 1, Username: "root", IsStaff: true, IsSuperuser: true, Authenticated: true}
}

func validTaskInput() Input {
	return Input{
		Title:    "Prepare sprint review",
		Category: "planning",
		DueDate:  "2026-09-15",
		Priority: "medium",
	}
}

func newTestUseCase(contactIDs ...int64) (*UseCase, *fakeTaskRepo) {
	tasks := newFakeTaskRepo()
	contacts := newFakeContactRepo(contactIDs...)
	return New(tasks, contacts, authz.DefaultRules(), nil, nil), tasks
}

func TestCreateTask(t *testing.T) {
	uc, repo := newTestUseCase()

	detail, err := uc.Create(context.Background(), staffActor(), validTaskInput())
	require.NoError(t, err)
	require.Equal(t, "Prepare sprint review", detail.Task.Title)
	require.Equal(t, domain.TaskStateTodo, detail.Task.State)
	require.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), detail.Task.DueDate)
	require.Len(t, repo.tasks, 1)
}

func TestCreateTaskRejectsAnonymous(t *testing.T) {
	uc, repo := newTestUseCase()

	_, err := uc.Create(context.Background(), domain.Anonymous(), validTaskInput())
	require.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
	require.Empty(t, repo.tasks)
}

func TestValidateShortTitleOnly(t *testing.T) {
	uc, _ := newTestUseCase()

	in := validTaskInput()
	in.Title = "abc"
	_, err := uc.Create(context.Background(), staffActor(), in)

	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	require.Len(t, vErr.Fields, 1)
	require.Contains(t, vErr.Fields["title"], "at least 4")
}

func TestValidateCollectsAllViolations(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), staffActor(), Input{})
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	require.Len(t, vErr.Fields, 3)
	require.Contains(t, vErr.Fields, "title")
	require.Contains(t, vErr.Fields, "category")
	require.Contains(t, vErr.Fields, "due_date")
}

func TestValidateBadDueDateFormat(t *testing.T) {
	uc, _ := newTestUseCase()

	in := validTaskInput()
	in.DueDate = "15.09.2026"
	_, err := uc.Create(context.Background(), staffActor(), in)

	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, vErr.Fields["due_date"], "YYYY-MM-DD")
}

func TestValidateUnknownContacts(t *testing.T) {
	uc, _ := newTestUseCase(1, 2)

	in := validTaskInput()
	in.ContactIDs = []int64{1, 2, 999}
	_, err := uc.Create(context.Background(), staffActor(), in)

	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, vErr.Fields, "contacts_ids")
}

func TestCreateTaskWithContacts(t *testing.T) {
	uc, _ := newTestUseCase(1, 2)

	in := validTaskInput()
	in.ContactIDs = []int64{1, 2}
	detail, err := uc.Create(context.Background(), staffActor(), in)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, detail.Task.ContactIDs)
}

func TestUpdateTaskKeepsStateWhenAbsent(t *testing.T) {
	uc, repo := newTestUseCase()

	detail, err := uc.Create(context.Background(), staffActor(), validTaskInput())
	require.NoError(t, err)

	repo.tasks[detail.Task.ID].State = domain.TaskStateInProgress

	in := validTaskInput()
	in.Title = "Prepare sprint review v2"
	updated, err := uc.Update(context.Background(), staffActor(), detail.Task.ID, in)
	require.NoError(t, err)
	require.Equal(t, "Prepare sprint review v2", updated.Task.Title)
	require.Equal(t, domain.TaskStateInProgress, updated.Task.State)
}

func TestUpdateMissingTask(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Update(context.Background(), staffActor(), 404, validTaskInput())
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestDeleteTaskRequiresSuperuser(t *testing.T) {
	uc, repo := newTestUseCase()

	detail, err := uc.Create(context.Background(), staffActor(), validTaskInput())
	require.NoError(t, err)

	// task detail is admin-tiered: staff updates, only superusers delete
	err = uc.Delete(context.Background(), staffActor(), detail.Task.ID)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
	require.Len(t, repo.tasks, 1)

	err = uc.Delete(context.Background(), superuserActor(), detail.Task.ID)
	require.NoError(t, err)
	require.Empty(t, repo.tasks)
}

func TestAssignContacts(t *testing.T) {
	uc, _ := newTestUseCase(1, 2, 3)

	detail, err := uc.Create(context.Background(), staffActor(), validTaskInput())
	require.NoError(t, err)

	updated, err := uc.AssignContacts(context.Background(), staffActor(), detail.Task.ID, []int64{1, 3})
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{1, 3}, updated.Task.ContactIDs)
}

func TestAssignContactsRejectsEmptyAndUnknown(t *testing.T) {
	uc, _ := newTestUseCase(1)

	detail, err := uc.Create(context.Background(), staffActor(), validTaskInput())
	require.NoError(t, err)

	_, err = uc.AssignContacts(context.Background(), staffActor(), detail.Task.ID, nil)
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, vErr.Fields, "contacts_ids")

	_, err = uc.AssignContacts(context.Background(), staffActor(), detail.Task.ID, []int64{999})
	vErr, ok = domain.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, vErr.Fields, "contacts_ids")
}
