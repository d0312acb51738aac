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

// ClientService manages barbershop clients.
type ClientService struct {
	clients    repository.ClientRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewClientService builds the service.
func NewClientService(clients repository.ClientRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{clients: clients, dispatcher: dispatcher, logger: logger}
}

// Create registers a client. A CPF may only be registered once.
func (s *ClientService) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if _, err := s.clients.GetByCPF(ctx, client.CPF); err == nil {
		return nil, apperrors.NewConflict("client already registered", map[string]any{"cpf": client.CPF})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.clients.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("client already registered", map[string]any{"cpf": client.CPF})
		}
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventClientCreated, "client", client.ID, nil)
	return client, nil
}

// GetByCPF looks a client up by CPF.
func (s *ClientService) GetByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	client, err := s.clients.GetByCPF(ctx, cpf)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("client", nil)
	}
	return client, err
}

// Get looks a client up by id.
func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("client", map[string]any{"id": id})
	}
	return client, err
}

// Exists reports whether a client with id is registered.
func (s *ClientService) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.clients.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Update applies a partial update.
func (s *ClientService) Update(ctx context.Context, id int64, patch domain.ClientPatch) (*domain.Client, error) {
	client, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(client)

	if err := s.clients.Update(ctx, client); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperrors.NewConflict("client already registered", map[string]any{"cpf": client.CPF})
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NewNotFound("client", map[string]any{"id": id})
		}
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventClientUpdated, "client", client.ID, map[string]string{
		"changed": strings.Join(patch.Fields(), ","),
	})
	return client, nil
}

// Delete removes a client and returns the removed record.
func (s *ClientService) Delete(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clients.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("client", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.EventClientDeleted, "client", client.ID, nil)
	return client, nil
}
