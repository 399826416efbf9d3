package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joinboard/backend/domain"
)

func registrationFields(t *testing.T, uc *UseCase, in RegistrationInput) map[string]string {
	t.Helper()
	err := uc.validateRegistration(context.Background(), in)
	if err == nil {
		return nil
	}
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	return vErr.Fields
}

func TestValidateRegistrationAccepts(t *testing.T) {
	uc, _, _ := newTestUseCase()
	require.Nil(t, registrationFields(t, uc, validInput()))
}

func TestValidateRegistrationCollectsAllViolations(t *testing.T) {
	uc, _, _ := newTestUseCase()

	fields := registrationFields(t, uc, RegistrationInput{})
	require.Len(t, fields, 5)
	require.Contains(t, fields, "username")
	require.Contains(t, fields, "first_name")
	require.Contains(t, fields, "last_name")
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "password")
}

func TestValidateRegistrationShortUsername(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validInput()
	in.Username = "ab"
	fields := registrationFields(t, uc, in)
	require.Len(t, fields, 1)
	require.Contains(t, fields["username"], "at least 3")
}

func TestValidateRegistrationShortNames(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validInput()
	in.FirstName = "Al"
	in.LastName = "Bo"
	fields := registrationFields(t, uc, in)
	require.Len(t, fields, 2)
	require.Contains(t, fields, "first_name")
	require.Contains(t, fields, "last_name")
}

func TestValidateRegistrationShortPasswordReportsLengthOnly(t *testing.T) {
	uc, _, _ := newTestUseCase()

	// short but matching: the length rule fires, not the match rule
	in := validInput()
	in.Password = "short1"
	in.RepeatedPassword = "short1"
	fields := registrationFields(t, uc, in)
	require.Len(t, fields, 1)
	require.Contains(t, fields["password"], "at least 8")
}

func TestValidateRegistrationPasswordMismatch(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validInput()
	in.RepeatedPassword = "different-password"
	fields := registrationFields(t, uc, in)
	require.Len(t, fields, 1)
	require.Contains(t, fields["password"], "do not match")
}

func TestValidateRegistrationTakenEmail(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, _, err := uc.Register(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Username = "someoneelse"
	fields := registrationFields(t, uc, in)
	require.Len(t, fields, 1)
	require.Contains(t, fields["email"], "already exists")
}
