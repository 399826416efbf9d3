package domain

import "time"

// Token is the single persistent credential of a user. The user_id uniqueness
// constraint in storage guarantees at most one live token per user; issuing is
// always a fetch-or-create.
type Token struct {
	Key       string    `json:"key"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
