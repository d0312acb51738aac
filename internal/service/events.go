package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/barbershop-service/internal/auth"
	"github.com/spec-kit/barbershop-service/internal/events"
)

// publish emits an event attributed to the login carried by ctx. Delivery
// failures are logged and never fail the write that triggered them.
func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, eventType events.EventType, resource string, id int64, fields map[string]string) {
	if dispatcher == nil {
		return
	}
	actor, _ := auth.LoginFromContext(ctx)
	event := events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Resource:   resource,
		ResourceID: id,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
		Fields:     fields,
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event delivery failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

func int64String(v int64) string {
	return strconv.FormatInt(v, 10)
}
