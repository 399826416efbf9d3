package domain

import "time"

// Subtask is a checklist item belonging to exactly one task. Subtasks are
// removed together with their task (cascade on the storage side).
type Subtask struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"task"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
