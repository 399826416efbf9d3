package contact

import (
	"strings"

	"github.com/joinboard/backend/domain"
)

func validateCreate(in Input) error {
	vErr := domain.NewValidationError()
	requireField(vErr, "first_name", in.FirstName, true)
	requireField(vErr, "last_name", in.LastName, true)
	requireField(vErr, "email", in.Email, true)
	requireField(vErr, "phone", in.Phone, true)
	return vErr.ErrOrNil()
}

func validateUpdate(in Input) error {
	vErr := domain.NewValidationError()
	requireField(vErr, "first_name", in.FirstName, false)
	requireField(vErr, "last_name", in.LastName, false)
	requireField(vErr, "email", in.Email, false)
	requireField(vErr, "phone", in.Phone, false)
	return vErr.ErrOrNil()
}

// requireField enforces the two-layer contract: a field may be absent on
// partial payloads, but once present it must be non-empty. With required set,
// absence itself is a violation.
func requireField(vErr *domain.ValidationError, name string, value *string, required bool) {
	if value == nil {
		if required {
			vErr.Add(name, name+" is required")
		}
		return
	}
	if strings.TrimSpace(*value) == "" {
		vErr.Add(name, name+" must not be empty")
	}
}
