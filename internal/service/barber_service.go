package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/events"
	"github.com/spec-kit/barbershop-service/internal/repository"
	apperrors "github.com/spec-kit/barbershop-service/pkg/util"
)

// BarberService manages the shop's barbers.
type BarberService struct {
	barbers    repository.BarberRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewBarberService builds the service.
func NewBarberService(barbers repository.BarberRepository, dispatcher events.Dispatcher, logger *zap.Logger) *BarberService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BarberService{barbers: barbers, dispatcher: dispatcher, logger: logger}
}

func (s *BarberService) Create(ctx context.Context, name string) (*domain.Barber, error) {
	barber := &domain.Barber{Name: name}
	if err := s.barbers.Create(ctx, barber); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventBarberCreated, "barber", barber.ID, nil)
	return barber, nil
}

func (s *BarberService) Get(ctx context.Context, id int64) (*domain.Barber, error) {
	barber, err := s.barbers.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("barber", map[string]any{"id": id})
	}
	return barber, err
}

func (s *BarberService) List(ctx context.Context) ([]domain.Barber, error) {
	return s.barbers.List(ctx)
}

func (s *BarberService) Update(ctx context.Context, id int64, name string) (*domain.Barber, error) {
	barber := &domain.Barber{ID: id, Name: name}
	if err := s.barbers.Update(ctx, barber); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("barber", map[string]any{"id": id})
		}
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventBarberUpdated, "barber", id, nil)
	return barber, nil
}

func (s *BarberService) Delete(ctx context.Context, id int64) error {
	if _, err := s.barbers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("barber", map[string]any{"id": id})
		}
		return err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventBarberDeleted, "barber", id, nil)
	return nil
}
