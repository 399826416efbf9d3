package domain

import "time"

// GuestUsername names the shared, lazily created guest account. At most one
// user with this name exists.
const GuestUsername = "Guest"

// User represents a registered identity in the board.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor returns the per-request identity snapshot for this user.
func (u *User) Actor() Actor {
	if u == nil {
		return Anonymous()
	}
	return Actor{
		ID:            u.ID,
		Username:      u.Username,
		IsStaff:       u.IsStaff,
		IsSuperuser:   u.IsSuperuser,
		Authenticated: true,
	}
}
