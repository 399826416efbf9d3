package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	const query = `
	SELECT t.id, t.title, t.description, t.category, t.due_date, t.priority, t.state, t.created_at, t.updated_at,
		COALESCE(array_agg(tc.contact_id) FILTER (WHERE tc.contact_id IS NOT NULL), '{}') AS contact_ids
	FROM tasks t
	LEFT JOIN task_contacts tc ON tc.task_id = t.id
	GROUP BY t.id
	ORDER BY t.id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `
	SELECT t.id, t.title, t.description, t.category, t.due_date, t.priority, t.state, t.created_at, t.updated_at,
		COALESCE(array_agg(tc.contact_id) FILTER (WHERE tc.contact_id IS NOT NULL), '{}') AS contact_ids
	FROM tasks t
	LEFT JOIN task_contacts tc ON tc.task_id = t.id
	WHERE t.id = $1
	GROUP BY t.id
	`
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	if task.State == "" {
		task.State = domain.TaskStateTodo
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insert = `
	INSERT INTO tasks (title, description, category, due_date, priority, state)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(ctx, insert,
		task.Title,
		task.Description,
		task.Category,
		task.DueDate,
		task.Priority,
		task.State,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return err
	}

	if err := insertAssignments(ctx, tx, task.ID, task.ContactIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const update = `
	UPDATE tasks
	SET title = $2,
		description = $3,
		category = $4,
		due_date = $5,
		priority = $6,
		state = $7,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := tx.QueryRow(ctx, update,
		task.ID,
		task.Title,
		task.Description,
		task.Category,
		task.DueDate,
		task.Priority,
		task.State,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM task_contacts WHERE task_id = $1`, task.ID); err != nil {
		return err
	}
	if err := insertAssignments(ctx, tx, task.ID, task.ContactIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) AssignContacts(ctx context.Context, taskID int64, contactIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertAssignments(ctx, tx, taskID, contactIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertAssignments(ctx context.Context, tx pgx.Tx, taskID int64, contactIDs []int64) error {
	if len(contactIDs) == 0 {
		return nil
	}
	const insert = `
	INSERT INTO task_contacts (task_id, contact_id)
	SELECT $1, unnest($2::bigint[])
	ON CONFLICT DO NOTHING
	`
	_, err := tx.Exec(ctx, insert, taskID, contactIDs)
	return err
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Category,
		&task.DueDate,
		&task.Priority,
		&task.State,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.ContactIDs,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}
