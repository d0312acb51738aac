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

// AddressService manages client addresses.
type AddressService struct {
	addresses  repository.AddressRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAddressService builds the service.
func NewAddressService(addresses repository.AddressRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AddressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressService{addresses: addresses, dispatcher: dispatcher, logger: logger}
}

func (s *AddressService) Create(ctx context.Context, addr *domain.Address) (*domain.Address, error) {
	if err := s.addresses.Create(ctx, addr); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventAddressCreated, "address", addr.ID, map[string]string{
		"client_id": int64String(addr.ClientID),
	})
	return addr, nil
}

func (s *AddressService) Get(ctx context.Context, id int64) (*domain.Address, error) {
	addr, err := s.addresses.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("address", map[string]any{"id": id})
	}
	return addr, err
}

func (s *AddressService) List(ctx context.Context) ([]domain.Address, error) {
	return s.addresses.List(ctx)
}

// ListByClient reports a client without addresses as not found.
func (s *AddressService) ListByClient(ctx context.Context, clientID int64) ([]domain.Address, error) {
	addrs, err := s.addresses.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, apperrors.NewNotFound("addresses for client", map[string]any{"client_id": clientID})
	}
	return addrs, nil
}

// Update replaces every field of the address.
func (s *AddressService) Update(ctx context.Context, id int64, addr *domain.Address) (*domain.Address, error) {
	addr.ID = id
	if err := s.addresses.Update(ctx, addr); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("address", map[string]any{"id": id})
		}
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventAddressUpdated, "address", id, nil)
	return addr, nil
}

func (s *AddressService) Delete(ctx context.Context, id int64) error {
	if _, err := s.addresses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("address", map[string]any{"id": id})
		}
		return err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventAddressDeleted, "address", id, nil)
	return nil
}
