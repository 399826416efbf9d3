package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/pkg/credentials"
	"github.com/joinboard/backend/repository"
)

type tokenRepository struct {
	pool *pgxpool.Pool
}

// NewTokenRepository returns a Postgres-backed token store.
func NewTokenRepository(pool *pgxpool.Pool) repository.TokenRepository {
	return &tokenRepository{pool: pool}
}

// GetOrCreate inserts a fresh key guarded by the user_id uniqueness
// constraint. When a concurrent request wins the insert, ON CONFLICT DO
// NOTHING drops ours and the follow-up select returns the surviving token, so
// every caller observes the same key.
func (r *tokenRepository) GetOrCreate(ctx context.Context, userID int64) (*domain.Token, error) {
	key, err := credentials.NewTokenKey()
	if err != nil {
		return nil, err
	}

	const insert = `
	INSERT INTO auth_tokens (key, user_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, insert, key, userID); err != nil {
		return nil, err
	}

	const query = `SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = $1`
	return scanToken(r.pool.QueryRow(ctx, query, userID))
}

func (r *tokenRepository) FindByKey(ctx context.Context, key string) (*domain.Token, error) {
	const query = `SELECT key, user_id, created_at FROM auth_tokens WHERE key = $1`
	return scanToken(r.pool.QueryRow(ctx, query, key))
}

func scanToken(row rowScanner) (*domain.Token, error) {
	var token domain.Token
	if err := row.Scan(&token.Key, &token.UserID, &token.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}
