package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/backend/authz"
	"github.com/joinboard/backend/domain"
)

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]domain.Contact)
	return contacts, args.Error(1)
}

func (m *mockContactRepo) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	contact, _ := args.Get(0).(*domain.Contact)
	return contact, args.Error(1)
}

func (m *mockContactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	if args.Error(0) == nil {
		contact.ID = 42
	}
	return args.Error(0)
}

func (m *mockContactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockContactRepo) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	missing, _ := args.Get(0).([]int64)
	return missing, args.Error(1)
}

func (m *mockContactRepo) ListByTask(ctx context.Context, taskID int64) ([]domain.Contact, error) {
	args := m.Called(ctx, taskID)
	contacts, _ := args.Get(0).([]domain.Contact)
	return contacts, args.Error(1)
}

func strPtr(s string) *string { return &s }

func fullInput() Input {
	return Input{
		FirstName:  strPtr("Maya"),
		LastName:   strPtr("Iversen"),
		Email:      strPtr("maya@example.com"),
		Phone:      strPtr("+4512345678"),
		BadgeColor: strPtr("blue"),
	}
}

func staffActor() domain.Actor {
	return domain.Actor{ID: 7, Username: "staffer", IsStaff: true, Authenticated: true}
}

func superuserActor() domain.Actor {
	return domain.Actor{ID: 1, Username: "root", IsStaff: true, IsSuperuser: true, Authenticated: true}
}

func TestCreateAssignsActorAsOwner(t *testing.T) {
	repo := new(mockContactRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	contact, err := uc.Create(context.Background(), staffActor(), fullInput())
	require.NoError(t, err)
	require.Equal(t, int64(7), contact.UserID)
	require.Equal(t, int64(42), contact.ID)
	repo.AssertExpectations(t)
}

func TestCreateHonorsExplicitOwner(t *testing.T) {
	repo := new(mockContactRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	in := fullInput()
	in.UserID = 99
	contact, err := uc.Create(context.Background(), staffActor(), in)
	require.NoError(t, err)
	require.Equal(t, int64(99), contact.UserID)
}

func TestCreateRejectsNonStaff(t *testing.T) {
	repo := new(mockContactRepo)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	actor := domain.Actor{ID: 3, Username: "plain", Authenticated: true}
	_, err := uc.Create(context.Background(), actor, fullInput())
	require.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRejectsAnonymous(t *testing.T) {
	repo := new(mockContactRepo)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	_, err := uc.Create(context.Background(), domain.Anonymous(), fullInput())
	require.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
}

func TestCreateCollectsMissingFields(t *testing.T) {
	repo := new(mockContactRepo)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	_, err := uc.Create(context.Background(), staffActor(), Input{FirstName: strPtr("Maya")})
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	require.Len(t, vErr.Fields, 3)
	require.Contains(t, vErr.Fields, "last_name")
	require.Contains(t, vErr.Fields, "email")
	require.Contains(t, vErr.Fields, "phone")
}

func TestUpdatePartialPayloadKeepsOwner(t *testing.T) {
	repo := new(mockContactRepo)
	existing := &domain.Contact{ID: 5, UserID: 7, FirstName: "Old", LastName: "Name", Email: "old@example.com", Phone: "1"}
	repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	in := Input{FirstName: strPtr("New"), UserID: 99}
	contact, err := uc.Update(context.Background(), staffActor(), 5, in)
	require.NoError(t, err)
	require.Equal(t, "New", contact.FirstName)
	require.Equal(t, "Name", contact.LastName)
	require.Equal(t, int64(7), contact.UserID)
}

func TestUpdateRejectsPresentButEmptyField(t *testing.T) {
	repo := new(mockContactRepo)
	existing := &domain.Contact{ID: 5, UserID: 7}
	repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	_, err := uc.Update(context.Background(), staffActor(), 5, Input{Email: strPtr("  ")})
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, vErr.Fields, "email")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateRejectsForeignContact(t *testing.T) {
	repo := new(mockContactRepo)
	existing := &domain.Contact{ID: 5, UserID: 1234}
	repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	// contact detail is owner-gated: a staff actor may not edit someone else's contact
	_, err := uc.Update(context.Background(), staffActor(), 5, Input{FirstName: strPtr("X")})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
}

func TestDeleteRequiresSuperuser(t *testing.T) {
	repo := new(mockContactRepo)
	existing := &domain.Contact{ID: 5, UserID: 7}
	repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	// even the owner may not delete under the owner gate
	_, err := uc.Delete(context.Background(), staffActor(), 5)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteAsSuperuserReturnsLastState(t *testing.T) {
	repo := new(mockContactRepo)
	existing := &domain.Contact{ID: 5, UserID: 7, FirstName: "Maya"}
	repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	contact, err := uc.Delete(context.Background(), superuserActor(), 5)
	require.NoError(t, err)
	require.Equal(t, "Maya", contact.FirstName)
	repo.AssertExpectations(t)
}

func TestDeleteMissingContact(t *testing.T) {
	repo := new(mockContactRepo)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrContactNotFound)
	uc := New(repo, authz.DefaultRules(), nil, nil)

	_, err := uc.Delete(context.Background(), superuserActor(), 404)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
