package transport

import (
	"encoding/json"

	"github.com/joinboard/backend/domain"
)

// Envelope is the standard API response wrapper. Success carries data and a
// message; failure carries a field→message map (or a list) and an error string.
type Envelope struct {
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	OK      bool        `json:"ok"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success returns a success envelope.
func Success(data interface{}, message string) Envelope {
	return Envelope{
		Data:    data,
		OK:      true,
		Message: message,
	}
}

// Failure returns an error envelope.
func Failure(errs interface{}, message string) Envelope {
	return Envelope{
		Errors: errs,
		OK:     false,
		Error:  message,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

const dateLayout = "2006-01-02"

// ContactResponse is the wire shape of a contact.
type ContactResponse struct {
	ID         int64  `json:"id"`
	User       int64  `json:"user"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BadgeColor string `json:"badge_color"`
}

// NewContactResponse maps a domain contact onto its wire shape.
func NewContactResponse(c domain.Contact) ContactResponse {
	return ContactResponse{
		ID:         c.ID,
		User:       c.UserID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		BadgeColor: c.BadgeColor,
	}
}

// NewContactResponses maps a slice, never returning nil so the JSON stays [].
func NewContactResponses(contacts []domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, NewContactResponse(c))
	}
	return out
}

// TaskResponse embeds the resolved contacts and their count.
type TaskResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	DueDate       string            `json:"due_date"`
	Priority      string            `json:"priority"`
	State         string            `json:"state"`
	Contacts      []ContactResponse `json:"contacts"`
	ContactsCount int               `json:"contacts_count"`
}

// NewTaskResponse maps a task and its assigned contacts onto the wire shape.
func NewTaskResponse(t domain.Task, contacts []domain.Contact) TaskResponse {
	due := ""
	if !t.DueDate.IsZero() {
		due = t.DueDate.Format(dateLayout)
	}
	return TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		DueDate:       due,
		Priority:      t.Priority,
		State:         t.State,
		Contacts:      NewContactResponses(contacts),
		ContactsCount: len(contacts),
	}
}

// SubtaskResponse is the wire shape of a subtask.
type SubtaskResponse struct {
	ID          int64  `json:"id"`
	Task        int64  `json:"task"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

// NewSubtaskResponse maps a domain subtask onto its wire shape.
func NewSubtaskResponse(s domain.Subtask) SubtaskResponse {
	return SubtaskResponse{
		ID:          s.ID,
		Task:        s.TaskID,
		Title:       s.Title,
		IsCompleted: s.IsCompleted,
	}
}
