package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/repository"
)

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation of ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) repository.ContactRepository {
	return &contactRepository{pool: pool}
}

const contactColumns = `id, user_id, first_name, last_name, email, phone, badge_color, created_at, updated_at`

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	const query = `SELECT ` + contactColumns + ` FROM contacts ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContacts(rows)
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	const query = `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	return scanContact(r.pool.QueryRow(ctx, query, id))
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	if contact == nil {
		return domain.ErrInvalidPayload
	}
	if contact.BadgeColor == "" {
		contact.BadgeColor = "red"
	}

	const query = `
	INSERT INTO contacts (user_id, first_name, last_name, email, phone, badge_color)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		contact.UserID,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
		contact.BadgeColor,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	if contact == nil {
		return domain.ErrInvalidPayload
	}

	// user_id is deliberately absent: ownership is fixed at creation.
	const query = `
	UPDATE contacts
	SET first_name = $2,
		last_name = $3,
		email = $4,
		phone = $5,
		badge_color = $6,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		contact.ID,
		contact.FirstName,
		contact.LastName,
		contact.Email,
		contact.Phone,
		contact.BadgeColor,
	).Scan(&contact.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrContactNotFound
		}
		return err
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contacts WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *contactRepository) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
	SELECT wanted.id
	FROM unnest($1::bigint[]) AS wanted(id)
	LEFT JOIN contacts ON contacts.id = wanted.id
	WHERE contacts.id IS NULL
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missing []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		missing = append(missing, id)
	}
	return missing, rows.Err()
}

func (r *contactRepository) ListByTask(ctx context.Context, taskID int64) ([]domain.Contact, error) {
	const query = `
	SELECT c.id, c.user_id, c.first_name, c.last_name, c.email, c.phone, c.badge_color, c.created_at, c.updated_at
	FROM contacts c
	JOIN task_contacts tc ON tc.contact_id = c.id
	WHERE tc.task_id = $1
	ORDER BY c.id
	`
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContacts(rows)
}

func collectContacts(rows pgx.Rows) ([]domain.Contact, error) {
	var contacts []domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *contact)
	}
	return contacts, rows.Err()
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var contact domain.Contact
	if err := row.Scan(
		&contact.ID,
		&contact.UserID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.Phone,
		&contact.BadgeColor,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}
