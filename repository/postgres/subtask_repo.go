package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/repository"
)

type subtaskRepository struct {
	pool *pgxpool.Pool
}

// NewSubtaskRepository returns a Postgres-backed implementation of SubtaskRepository.
func NewSubtaskRepository(pool *pgxpool.Pool) repository.SubtaskRepository {
	return &subtaskRepository{pool: pool}
}

const subtaskColumns = `id, task_id, title, is_completed, created_at, updated_at`

func (r *subtaskRepository) List(ctx context.Context) ([]domain.Subtask, error) {
	const query = `SELECT ` + subtaskColumns + ` FROM subtasks ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subtasks []domain.Subtask
	for rows.Next() {
		subtask, err := scanSubtask(rows)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, *subtask)
	}
	return subtasks, rows.Err()
}

func (r *subtaskRepository) GetByID(ctx context.Context, id int64) (*domain.Subtask, error) {
	const query = `SELECT ` + subtaskColumns + ` FROM subtasks WHERE id = $1`
	return scanSubtask(r.pool.QueryRow(ctx, query, id))
}

func (r *subtaskRepository) Create(ctx context.Context, subtask *domain.Subtask) error {
	if subtask == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO subtasks (task_id, title, is_completed)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		subtask.TaskID,
		subtask.Title,
		subtask.IsCompleted,
	).Scan(&subtask.ID, &subtask.CreatedAt, &subtask.UpdatedAt)
}

func (r *subtaskRepository) Update(ctx context.Context, subtask *domain.Subtask) error {
	if subtask == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE subtasks
	SET title = $2,
		is_completed = $3,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		subtask.ID,
		subtask.Title,
		subtask.IsCompleted,
	).Scan(&subtask.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSubtaskNotFound
		}
		return err
	}
	return nil
}

func (r *subtaskRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM subtasks WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSubtaskNotFound
	}
	return nil
}

func scanSubtask(row rowScanner) (*domain.Subtask, error) {
	var subtask domain.Subtask
	if err := row.Scan(
		&subtask.ID,
		&subtask.TaskID,
		&subtask.Title,
		&subtask.IsCompleted,
		&subtask.CreatedAt,
		&subtask.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubtaskNotFound
		}
		return nil, err
	}
	return &subtask, nil
}
