// Package auth implements registration, login and token resolution.
package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/pkg/credentials"
	"github.com/joinboard/backend/repository"
)

// ActorCache is the optional fast path for token resolution.
type ActorCache interface {
	Get(ctx context.Context, tokenKey string) (domain.Actor, error)
	Set(ctx context.Context, tokenKey string, actor domain.Actor) error
}

// Options control the privilege flags granted on registration. The historical
// policy hands every new account staff and superuser rights; keep that in
// sight when deploying outside development.
type Options struct {
	GrantStaff     bool
	GrantSuperuser bool
}

type UseCase struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	cache  ActorCache
	opts   Options
	logger *zap.Logger
}

func New(users repository.UserRepository, tokens repository.TokenRepository, cache ActorCache, opts Options, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tokens: tokens,
		cache:  cache,
		opts:   opts,
		logger: logger,
	}
}

// RegistrationInput carries the raw registration payload.
type RegistrationInput struct {
	Username         string `json:"username"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
}

// Account is the data returned for a registered or logged-in user.
type Account struct {
	Token       string `json:"token"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Register validates and creates a new account. The created flag is false
// when an existing Guest account was returned instead of a new one.
//
// The guest flow looks the account up first and only falls through to normal
// registration when it does not exist yet, so repeated guest registrations
// always yield the same token.
func (uc *UseCase) Register(ctx context.Context, in RegistrationInput) (*Account, bool, error) {
	if in.Username == domain.GuestUsername {
		user, err := uc.users.FindByUsername(ctx, domain.GuestUsername)
		switch {
		case err == nil:
			account, err := uc.accountFor(ctx, user)
			return account, false, err
		case domain.IsDomainError(err, domain.ErrCodeNotFound):
			// first guest registration, continue below
		default:
			return nil, false, err
		}
	}

	if err := uc.validateRegistration(ctx, in); err != nil {
		return nil, false, err
	}

	hash, err := credentials.HashPassword(in.Password)
	if err != nil {
		return nil, false, err
	}

	user := &domain.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		IsStaff:      uc.opts.GrantStaff,
		IsSuperuser:  uc.opts.GrantSuperuser,
	}

	if err := uc.users.Create(ctx, user); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeConflict) {
			// A concurrent request won the insert. For the guest account that
			// is business as usual: return the surviving account.
			if in.Username == domain.GuestUsername {
				existing, findErr := uc.users.FindByUsername(ctx, domain.GuestUsername)
				if findErr != nil {
					return nil, false, findErr
				}
				account, accErr := uc.accountFor(ctx, existing)
				return account, false, accErr
			}
			vErr := domain.NewValidationError()
			vErr.Add("username", "a user with this username or email already exists")
			return nil, false, vErr
		}
		return nil, false, err
	}

	uc.logger.Info("account created",
		zap.String("username", user.Username),
		zap.Bool("is_staff", user.IsStaff),
		zap.Bool("is_superuser", user.IsSuperuser))

	account, err := uc.accountFor(ctx, user)
	return account, true, err
}

// Login verifies the (username, email, password) tuple. Unknown accounts and
// wrong passwords produce the same error so responses never reveal which part
// failed.
func (uc *UseCase) Login(ctx context.Context, username, email, password string) (*Account, error) {
	user, err := uc.users.FindByUsernameEmail(ctx, username, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !credentials.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.accountFor(ctx, user)
}

// ResolveToken maps an opaque token key to an actor snapshot, preferring the
// cache and falling back to the token and user stores.
func (uc *UseCase) ResolveToken(ctx context.Context, key string) (domain.Actor, error) {
	if key == "" {
		return domain.Anonymous(), domain.ErrTokenNotFound
	}

	if uc.cache != nil {
		if actor, err := uc.cache.Get(ctx, key); err == nil {
			return actor, nil
		}
	}

	token, err := uc.tokens.FindByKey(ctx, key)
	if err != nil {
		return domain.Anonymous(), err
	}

	user, err := uc.users.GetByID(ctx, token.UserID)
	if err != nil {
		return domain.Anonymous(), err
	}

	actor := user.Actor()
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, actor); err != nil {
			uc.logger.Warn("actor cache write failed", zap.Error(err))
		}
	}
	return actor, nil
}

func (uc *UseCase) accountFor(ctx context.Context, user *domain.User) (*Account, error) {
	token, err := uc.tokens.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Account{
		Token:       token.Key,
		UserID:      user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	}, nil
}
