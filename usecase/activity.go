package usecase

import "context"

// Activity actions recorded by the board usecases.
const (
	ActionCreate         = "create"
	ActionUpdate         = "update"
	ActionDelete         = "delete"
	ActionAssignContacts = "assign_contacts"
)

// ActivityEvent describes one successful mutation.
type ActivityEvent struct {
	ActorID  int64
	Entity   string
	Action   string
	EntityID int64
}

// ActivityRecorder is the outbound port for the mutation journal. Recording is
// best effort; usecases log failures and move on.
type ActivityRecorder interface {
	Record(ctx context.Context, event ActivityEvent) error
}
