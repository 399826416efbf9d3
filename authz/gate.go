// Package authz decides which actor may perform which verb on which resource.
// Gates are pure predicates over an actor snapshot; they never touch storage
// and never mutate anything. Object-level gates expect the target resource to
// be loaded before the verdict is asked for, so a deny always happens before
// any mutation.
package authz

import (
	"fmt"

	"github.com/joinboard/backend/domain"
)

// Gate is an enum-tagged authorization policy. Which gate guards which route
// is resolved once at route registration, not per request.
type Gate uint8

const (
	// GateStaff allows reads for everyone and writes/deletes for staff.
	GateStaff Gate = iota
	// GateAdminTiered allows reads for everyone, deletes for superusers and
	// other writes for staff.
	GateAdminTiered
	// GateOwner allows reads for everyone, deletes for superusers and other
	// writes for the owner, the guest account or a superuser.
	GateOwner
)

// Object is the loaded resource instance an object-level gate inspects.
// Collection gates receive nil.
type Object interface {
	OwnerUserID() int64
}

// ParseGate resolves a configured gate name.
func ParseGate(name string) (Gate, error) {
	switch name {
	case "staff":
		return GateStaff, nil
	case "admin-tiered":
		return GateAdminTiered, nil
	case "owner":
		return GateOwner, nil
	default:
		return GateStaff, fmt.Errorf("unknown gate %q", name)
	}
}

func (g Gate) String() string {
	switch g {
	case GateStaff:
		return "staff"
	case GateAdminTiered:
		return "admin-tiered"
	case GateOwner:
		return "owner"
	default:
		return "unknown"
	}
}

// Allows evaluates the gate predicate alone. Most callers want Authorize,
// which additionally enforces the anonymous-write rule.
func (g Gate) Allows(actor domain.Actor, verb Verb, obj Object) bool {
	if verb == VerbRead {
		return true
	}
	switch g {
	case GateStaff:
		return actor.IsStaff
	case GateAdminTiered:
		if verb == VerbDelete {
			return actor.IsSuperuser
		}
		return actor.IsStaff
	case GateOwner:
		if verb == VerbDelete {
			return actor.IsSuperuser
		}
		if actor.IsSuperuser || actor.IsGuest() {
			return true
		}
		return obj != nil && actor.ID == obj.OwnerUserID()
	default:
		return false
	}
}

// Authorize returns nil for an allowed request and a FORBIDDEN domain error
// otherwise. Unauthenticated actors are denied every non-read verb before the
// gate itself runs.
func Authorize(actor domain.Actor, verb Verb, g Gate, obj Object) error {
	if verb != VerbRead && !actor.Authenticated {
		return domain.NewError(domain.ErrCodeForbidden, "authentication required for this operation")
	}
	if g.Allows(actor, verb, obj) {
		return nil
	}
	return domain.NewError(domain.ErrCodeForbidden, denyMessage(g, verb))
}

func denyMessage(g Gate, verb Verb) string {
	switch g {
	case GateOwner:
		if verb == VerbDelete {
			return "permission denied: only an admin may delete this resource"
		}
		return "permission denied: only the owner, an admin or the guest user may update this resource"
	case GateAdminTiered:
		if verb == VerbDelete {
			return "permission denied: only an admin may delete this resource"
		}
		return "permission denied: only staff members may update this resource"
	default:
		return "permission denied: staff membership required"
	}
}
