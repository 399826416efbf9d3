package transport

// RegistrationRequest is the payload for POST /registration/.
type RegistrationRequest struct {
	Username         string `json:"username"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
}

// LoginRequest is the payload for POST /login/.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ContactRequest uses pointers so partial updates can tell absent fields from
// empty ones; the validators enforce the rest.
type ContactRequest struct {
	User       int64   `json:"user"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	BadgeColor *string `json:"badge_color"`
}

// TaskRequest is the full task payload; contacts are assigned by id.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	DueDate     string  `json:"due_date"`
	Priority    string  `json:"priority"`
	State       string  `json:"state"`
	ContactIDs  []int64 `json:"contacts_ids"`
}

// TaskContactsRequest is the payload for POST /tasks/{id}/contacts/.
type TaskContactsRequest struct {
	ContactIDs []int64 `json:"contacts_ids"`
}

// SubtaskRequest is the subtask payload; task_id only matters on creation.
type SubtaskRequest struct {
	TaskID      int64  `json:"task_id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}
