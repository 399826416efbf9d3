package domain

import "time"

// Task states as used by the board columns.
const (
	TaskStateTodo       = "todo"
	TaskStateInProgress = "in-progress"
	TaskStateFeedback   = "await-feedback"
	TaskStateDone       = "done"
)

// Task represents a card on the board. Assigned contacts are kept as ids;
// repositories resolve them through the task_contacts join table.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DueDate     time.Time `json:"due_date"`
	Priority    string    `json:"priority"`
	State       string    `json:"state"`
	ContactIDs  []int64   `json:"contacts"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
