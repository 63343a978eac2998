package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/contact-service/internal/auth"
	"github.com/spec-kit/contact-service/internal/cache"
	"github.com/spec-kit/contact-service/internal/domain"
	"github.com/spec-kit/contact-service/internal/events"
	"github.com/spec-kit/contact-service/internal/repository"
	"github.com/spec-kit/contact-service/internal/validation"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

// ContactDependencies bundles collaborators for the contact service.
type ContactDependencies struct {
	Contacts   repository.ContactRepository
	Cache      cache.ContactCache
	Validator  *validation.ContactValidator
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// ContactService implements contact CRUD.
type ContactService struct {
	contacts   repository.ContactRepository
	cache      cache.ContactCache
	validator  *validation.ContactValidator
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time

	// fillMu orders cache fills against invalidations; writeSeq moves on every write.
	fillMu   sync.Mutex
	writeSeq uint64
}

// NewContactService builds the service.
func NewContactService(deps ContactDependencies) *ContactService {
	s := &ContactService{
		contacts:   deps.Contacts,
		cache:      deps.Cache,
		validator:  deps.Validator,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        time.Now,
	}
	if s.cache == nil {
		s.cache = cache.NopContactCache{}
	}
	if s.validator == nil {
		s.validator = validation.NewContactValidator()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// List returns contacts newest first.
func (s *ContactService) List(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, error) {
	contacts, err := s.contacts.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return contacts, nil
}

// Get returns one contact, consulting the cache first.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	if !validID(id) {
		return nil, contactNotFound()
	}

	cached, ok, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn("contact cache read failed", zap.String("contact_id", id), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	seq := s.currentWriteSeq()
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, mapContactError(err)
	}
	s.fill(ctx, contact, seq)
	return contact, nil
}

// Create validates and stores a new contact.
func (s *ContactService) Create(ctx context.Context, patch domain.ContactPatch) (*domain.Contact, error) {
	if err := s.validator.ValidateCreate(patch); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		ID:      uuid.NewString(),
		Name:    *patch.Name,
		Email:   *patch.Email,
		Phone:   *patch.Phone,
		Address: patch.Address,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventContactCreated, contact.ID, events.ContactCreatedPayload{
		Name:  contact.Name,
		Email: contact.Email,
	})
	return contact, nil
}

// Update applies the present fields of patch to an existing contact.
func (s *ContactService) Update(ctx context.Context, id string, patch domain.ContactPatch) (*domain.Contact, error) {
	if err := s.validator.ValidateUpdate(patch); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, contactNotFound()
	}
	if patch.IsEmpty() {
		if _, err := s.contacts.GetByID(ctx, id); err != nil {
			return nil, mapContactError(err)
		}
		return nil, apperrors.NewValidationError("No fields to update", nil)
	}

	contact, err := s.contacts.Update(ctx, id, patch)
	if err != nil {
		return nil, mapContactError(err)
	}
	s.invalidate(ctx, id)

	s.publish(ctx, events.EventContactUpdated, id, events.ContactUpdatedPayload{Fields: patch.Fields()})
	return contact, nil
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return contactNotFound()
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return mapContactError(err)
	}
	s.invalidate(ctx, id)

	s.publish(ctx, events.EventContactDeleted, id, events.ContactDeletedPayload{})
	return nil
}

func (s *ContactService) currentWriteSeq() uint64 {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	return s.writeSeq
}

// fill caches a row read at seq unless a write has happened since.
func (s *ContactService) fill(ctx context.Context, contact *domain.Contact, seq uint64) {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	if s.writeSeq != seq {
		return
	}
	if err := s.cache.Set(ctx, contact); err != nil {
		s.logger.Warn("contact cache write failed", zap.String("contact_id", contact.ID), zap.Error(err))
	}
}

func (s *ContactService) invalidate(ctx context.Context, id string) {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	s.writeSeq++
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("contact cache invalidation failed", zap.String("contact_id", id), zap.Error(err))
	}
}

func (s *ContactService) publish(ctx context.Context, eventType events.EventType, contactID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ContactID: contactID,
		Timestamp: s.now().UTC(),
		Payload:   payload,
	}
	if identity, ok := auth.IdentityFromContext(ctx); ok {
		event.Actor = events.Actor{AccountID: identity.AccountID, Username: identity.Username}
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func contactNotFound() error {
	return apperrors.NewNotFound("Contact")
}

func mapContactError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return contactNotFound()
	}
	return apperrors.NewInternalError(err)
}
