package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/contact-service/internal/events"
)

// AuditService writes an audit trail for contact lifecycle events.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventContactCreated, a.record)
	a.dispatcher.Subscribe(events.EventContactUpdated, a.record)
	a.dispatcher.Subscribe(events.EventContactDeleted, a.record)
}

func (a *AuditService) record(_ context.Context, event events.Event) error {
	a.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("contact_id", event.ContactID),
		zap.String("actor_id", event.Actor.AccountID),
		zap.String("actor_username", event.Actor.Username),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload),
	)
	return nil
}
