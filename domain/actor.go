package domain

// Actor is the immutable identity snapshot attached to a request. It carries
// everything the authorization gates need, so verdicts never reach back into
// the user store.
type Actor struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	IsStaff       bool   `json:"is_staff"`
	IsSuperuser   bool   `json:"is_superuser"`
	Authenticated bool   `json:"authenticated"`
}

// Anonymous returns the actor used for requests without credentials.
func Anonymous() Actor {
	return Actor{}
}

// IsGuest reports whether the actor is the shared guest account.
func (a Actor) IsGuest() bool {
	return a.Authenticated && a.Username == GuestUsername
}
