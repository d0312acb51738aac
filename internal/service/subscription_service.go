package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/events"
	"github.com/spec-kit/barbershop-service/internal/repository"
	apperrors "github.com/spec-kit/barbershop-service/pkg/util"
)

// SubscriptionService manages client subscriptions.
type SubscriptionService struct {
	subscriptions repository.SubscriptionRepository
	clients       repository.ClientRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewSubscriptionService builds the service.
func NewSubscriptionService(subscriptions repository.SubscriptionRepository, clients repository.ClientRepository, dispatcher events.Dispatcher, logger *zap.Logger) *SubscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriptionService{subscriptions: subscriptions, clients: clients, dispatcher: dispatcher, logger: logger}
}

// Create stores a subscription for an existing client.
func (s *SubscriptionService) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	if err := s.validate(ctx, sub); err != nil {
		return nil, err
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventSubscriptionCreated, "subscription", sub.ID, map[string]string{
		"client_id": int64String(sub.ClientID),
	})
	return sub, nil
}

// Get returns one subscription.
func (s *SubscriptionService) Get(ctx context.Context, id int64) (*domain.Subscription, error) {
	sub, err := s.subscriptions.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("subscription", map[string]any{"id": id})
	}
	return sub, err
}

// ListByClient returns every subscription of a client. A client without
// subscriptions is reported as not found.
func (s *SubscriptionService) ListByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	subs, err := s.subscriptions.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, apperrors.NewNotFound("subscriptions for client", map[string]any{"client_id": clientID})
	}
	return subs, nil
}

// Update applies a partial update.
func (s *SubscriptionService) Update(ctx context.Context, id int64, patch domain.SubscriptionPatch) (*domain.Subscription, error) {
	sub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(sub)
	if err := s.validate(ctx, sub); err != nil {
		return nil, err
	}

	if err := s.subscriptions.Update(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("subscription", map[string]any{"id": id})
		}
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventSubscriptionUpdated, "subscription", sub.ID, map[string]string{
		"changed": strings.Join(patch.Fields(), ","),
	})
	return sub, nil
}

// Delete removes a subscription and returns the removed record.
func (s *SubscriptionService) Delete(ctx context.Context, id int64) (*domain.Subscription, error) {
	sub, err := s.subscriptions.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("subscription", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventSubscriptionDeleted, "subscription", sub.ID, nil)
	return sub, nil
}

func (s *SubscriptionService) validate(ctx context.Context, sub *domain.Subscription) error {
	if sub.EndDate.Before(sub.StartDate) {
		return apperrors.NewValidationError("invalid subscription", map[string]any{
			"end_date": "must not be before start_date",
		})
	}
	if _, err := s.clients.GetByID(ctx, sub.ClientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewBadRequest("client not found, cannot create subscription")
		}
		return err
	}
	return nil
}
