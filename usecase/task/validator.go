package task

import (
	"context"
	"strings"
	"time"

	"github.com/joinboard/backend/domain"
)

const minTitleLen = 4

// validate checks every field rule and the referential existence of assigned
// contacts, collecting all violations before reporting. It returns the parsed
// due date on success.
func (uc *UseCase) validate(ctx context.Context, in Input) (time.Time, error) {
	vErr := domain.NewValidationError()

	title := strings.TrimSpace(in.Title)
	if title == "" {
		vErr.Add("title", "title is required")
	} else if len(title) < minTitleLen {
		vErr.Add("title", "title must be at least 4 characters long")
	}

	if strings.TrimSpace(in.Category) == "" {
		vErr.Add("category", "category is required")
	}

	var dueDate time.Time
	if in.DueDate == "" {
		vErr.Add("due_date", "due date is required")
	} else if parsed, ok := parseDueDate(in.DueDate); ok {
		dueDate = parsed
	} else {
		vErr.Add("due_date", "due date must be a valid date in YYYY-MM-DD format")
	}

	if err := uc.checkContactsExist(ctx, in.ContactIDs, vErr); err != nil {
		return time.Time{}, err
	}

	return dueDate, vErr.ErrOrNil()
}
