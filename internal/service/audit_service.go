package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/barbershop-service/internal/events"
)

// AuditService writes an audit log line for every domain event.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{dispatcher: dispatcher, logger: logger.Named("audit")}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range events.AllEventTypes {
		a.dispatcher.Subscribe(eventType, a.handle)
	}
}

func (a *AuditService) handle(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("resource", event.Resource),
		zap.Int64("resource_id", event.ResourceID),
		zap.String("actor", event.Actor),
		zap.Time("at", event.Timestamp),
	}
	if len(event.Fields) > 0 {
		fields = append(fields, zap.Any("fields", event.Fields))
	}
	a.logger.Info("audit", fields...)
	return nil
}
