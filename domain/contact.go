package domain

import "time"

// Contact represents a person that can be assigned to tasks. Every contact
// belongs to the user that created it; the owner never changes afterwards.
type Contact struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	BadgeColor string    `json:"badge_color"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OwnerUserID exposes the owning user for object-level authorization.
func (c *Contact) OwnerUserID() int64 {
	if c == nil {
		return 0
	}
	return c.UserID
}
