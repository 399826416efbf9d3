// Package contact orchestrates contact CRUD: gate check, validation, storage.
package contact

import (
	"context"

	"go.uber.org/zap"

	"github.com/joinboard/backend/authz"
	"github.com/joinboard/backend/domain"
	"github.com/joinboard/backend/repository"
	"github.com/joinboard/backend/usecase"
)

type UseCase struct {
	contacts repository.ContactRepository
	rules    authz.Rules
	activity usecase.ActivityRecorder
	logger   *zap.Logger
}

func New(contacts repository.ContactRepository, rules authz.Rules, activity usecase.ActivityRecorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		contacts: contacts,
		rules:    rules,
		activity: activity,
		logger:   logger,
	}
}

// Input uses pointers so partial updates can tell "absent" from "empty".
// Fields are schema-optional but business-required: whatever is present must
// be non-empty, and creation requires all of them.
type Input struct {
	UserID     int64
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	BadgeColor *string
}

func (uc *UseCase) List(ctx context.Context) ([]domain.Contact, error) {
	return uc.contacts.List(ctx)
}

func (uc *UseCase) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	return uc.contacts.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, in Input) (*domain.Contact, error) {
	if err := authz.Authorize(actor, authz.VerbWrite, uc.rules.ContactList, nil); err != nil {
		return nil, err
	}
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	ownerID := in.UserID
	if ownerID == 0 {
		ownerID = actor.ID
	}

	contact := &domain.Contact{
		UserID:    ownerID,
		FirstName: *in.FirstName,
		LastName:  *in.LastName,
		Email:     *in.Email,
		Phone:     *in.Phone,
	}
	if in.BadgeColor != nil {
		contact.BadgeColor = *in.BadgeColor
	}

	if err := uc.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionCreate, contact.ID)
	return contact, nil
}

// Update applies a partial payload. The verdict is computed against the
// loaded contact before anything changes, and the owner never changes at all.
func (uc *UseCase) Update(ctx context.Context, actor domain.Actor, id int64, in Input) (*domain.Contact, error) {
	contact, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.VerbWrite, uc.rules.ContactDetail, contact); err != nil {
		return nil, err
	}
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		contact.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		contact.LastName = *in.LastName
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Phone != nil {
		contact.Phone = *in.Phone
	}
	if in.BadgeColor != nil {
		contact.BadgeColor = *in.BadgeColor
	}

	if err := uc.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionUpdate, contact.ID)
	return contact, nil
}

// Delete removes a contact and returns its last state for the response body.
func (uc *UseCase) Delete(ctx context.Context, actor domain.Actor, id int64) (*domain.Contact, error) {
	contact, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.VerbDelete, uc.rules.ContactDetail, contact); err != nil {
		return nil, err
	}

	if err := uc.contacts.Delete(ctx, id); err != nil {
		return nil, err
	}

	uc.record(ctx, actor, usecase.ActionDelete, id)
	return contact, nil
}

func (uc *UseCase) record(ctx context.Context, actor domain.Actor, action string, id int64) {
	if uc.activity == nil {
		return
	}
	event := usecase.ActivityEvent{
		ActorID:  actor.ID,
		Entity:   "contact",
		Action:   action,
		EntityID: id,
	}
	if err := uc.activity.Record(ctx, event); err != nil {
		uc.logger.Warn("activity record failed", zap.String("action", action), zap.Error(err))
	}
}
