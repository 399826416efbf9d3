package auth

import (
	"context"

	"github.com/joinboard/backend/domain"
)

const (
	minUsernameLen = 3
	minNameLen     = 3
	minPasswordLen = 8
)

// validateRegistration checks every rule and collects all violations into one
// field→message map. Nothing here is fail-fast: a response lists every broken
// field at once.
func (uc *UseCase) validateRegistration(ctx context.Context, in RegistrationInput) error {
	vErr := domain.NewValidationError()

	switch {
	case in.Username == "":
		vErr.Add("username", "username is required")
	case len(in.Username) < minUsernameLen:
		vErr.Add("username", "username must be at least 3 characters long")
	default:
		taken, err := uc.users.UsernameExists(ctx, in.Username)
		if err != nil {
			return err
		}
		if taken {
			vErr.Add("username", "a user with this username already exists")
		}
	}

	if in.FirstName == "" {
		vErr.Add("first_name", "first name is required")
	} else if len(in.FirstName) < minNameLen {
		vErr.Add("first_name", "first name must be at least 3 characters long")
	}

	if in.LastName == "" {
		vErr.Add("last_name", "last name is required")
	} else if len(in.LastName) < minNameLen {
		vErr.Add("last_name", "last name must be at least 3 characters long")
	}

	if in.Email == "" {
		vErr.Add("email", "email is required")
	} else {
		taken, err := uc.users.EmailExists(ctx, in.Email)
		if err != nil {
			return err
		}
		if taken {
			vErr.Add("email", "a user with this email already exists")
		}
	}

	// The length rule reports independently of the match rule, so a short,
	// matching password still fails on length alone.
	if in.Password == "" {
		vErr.Add("password", "password is required")
	} else if len(in.Password) < minPasswordLen {
		vErr.Add("password", "password must be at least 8 characters long")
	} else if in.Password != in.RepeatedPassword {
		vErr.Add("password", "passwords do not match")
	}

	return vErr.ErrOrNil()
}
