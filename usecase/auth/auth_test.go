package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/pkg/credentials"
)

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsernameEmail(_ context.Context, username, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.NewError(domain.ErrCodeConflict, "duplicate user")
		}
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeTokenRepo struct {
	byUser map[int64]*domain.Token
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byUser: make(map[int64]*domain.Token)}
}

func (r *fakeTokenRepo) GetOrCreate(_ context.Context, userID int64) (*domain.Token, error) {
	if t, ok := r.byUser[userID]; ok {
		return t, nil
	}
	key, err := credentials.NewTokenKey()
	if err != nil {
		return nil, err
	}
	token := &domain.Token{Key: key, UserID: userID}
	r.byUser[userID] = token
	return token, nil
}

func (r *fakeTokenRepo) FindByKey(_ context.Context, key string) (*domain.Token, error) {
	for _, t := range r.byUser {
		if t.Key == key {
			return t, nil
		}
	}
	return nil, domain.ErrTokenNotFound
}

func validInput() RegistrationInput {
	return RegistrationInput{
		Username:         "antonia",
		FirstName:        "Antonia",
		LastName:         "Marquez",
		Email:            "antonia@example.com",
		Password:         "long-enough-password",
		RepeatedPassword: "long-enough-password",
	}
}

func newTestUseCase() (*UseCase, *fakeUserRepo, *fakeTokenRepo) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	uc := New(users, tokens, nil, Options{GrantStaff: true, GrantSuperuser: true}, nil)
	return uc, users, tokens
}

func TestRegisterCreatesAccountWithToken(t *testing.T) {
	uc, _, _ := newTestUseCase()

	account, created, err := uc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, account.Token, 40)
	require.True(t, account.IsStaff)
	require.True(t, account.IsSuperuser)
	require.Equal(t, "antonia", account.Username)
}

func TestRegisterWithoutGrants(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	uc := New(users, tokens, nil, Options{}, nil)

	account, created, err := uc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, created)
	require.False(t, account.IsStaff)
	require.False(t, account.IsSuperuser)
}

func TestRegisterGuestIsIdempotent(t *testing.T) {
	uc, users, _ := newTestUseCase()

	in := validInput()
	in.Username = domain.GuestUsername
	in.Email = "guest@example.com"

	first, created, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.Token, second.Token)
	require.Equal(t, first.UserID, second.UserID)
	require.Len(t, users.users, 1)
}

func TestRegisterDuplicateUsernameFailsValidation(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, _, err := uc.Register(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Email = "other@example.com"
	_, _, err = uc.Register(context.Background(), in)

	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	require.Contains(t, vErr.Fields, "username")
	require.NotContains(t, vErr.Fields, "email")
}

func TestLoginReturnsSameTokenAsRegistration(t *testing.T) {
	uc, _, _ := newTestUseCase()

	registered, _, err := uc.Register(context.Background(), validInput())
	require.NoError(t, err)

	account, err := uc.Login(context.Background(), "antonia", "antonia@example.com", "long-enough-password")
	require.NoError(t, err)
	require.Equal(t, registered.Token, account.Token)
}

func TestLoginCollapsesFailureModes(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, _, err := uc.Register(context.Background(), validInput())
	require.NoError(t, err)

	// unknown account and wrong password produce the identical error
	_, unknownErr := uc.Login(context.Background(), "nobody", "nobody@example.com", "whatever-pass")
	_, wrongPassErr := uc.Login(context.Background(), "antonia", "antonia@example.com", "wrong-password")

	require.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	require.ErrorIs(t, wrongPassErr, domain.ErrInvalidCredentials)
	require.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestResolveToken(t *testing.T) {
	uc, _, _ := newTestUseCase()

	account, _, err := uc.Register(context.Background(), validInput())
	require.NoError(t, err)

	actor, err := uc.ResolveToken(context.Background(), account.Token)
	require.NoError(t, err)
	require.True(t, actor.Authenticated)
	require.Equal(t, account.UserID, actor.ID)
	require.Equal(t, "antonia", actor.Username)

	_, err = uc.ResolveToken(context.Background(), "0000000000000000000000000000000000000000")
	require.Error(t, err)

	_, err = uc.ResolveToken(context.Background(), "")
	require.Error(t, err)
}

type countingCache struct {
	actors map[string]domain.Actor
	hits   int
	misses int
}

func newCountingCache() *countingCache {
	return &countingCache{actors: make(map[string]domain.Actor)}
}

func (c *countingCache) Get(_ context.Context, key string) (domain.Actor, error) {
	if actor, ok := c.actors[key]; ok {
		c.hits++
		return actor, nil
	}
	c.misses++
	return domain.Anonymous(), domain.ErrTokenNotFound
}

func (c *countingCache) Set(_ context.Context, key string, actor domain.Actor) error {
	c.actors[key] = actor
	return nil
}

func TestResolveTokenUsesCache(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	cache := newCountingCache()
	uc := New(users, tokens, cache, Options{}, nil)

	account, _, err := uc.Register(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.ResolveToken(context.Background(), account.Token)
	require.NoError(t, err)
	require.Equal(t, 1, cache.misses)

	_, err = uc.ResolveToken(context.Background(), account.Token)
	require.NoError(t, err)
	require.Equal(t, 1, cache.hits)
}
