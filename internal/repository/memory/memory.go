// Package memory provides in-process implementations of the repository
// interfaces. The service falls back to them when no Postgres DSN is
// configured, and tests use them as the store double.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/repository"
)

// Store holds every table behind a single lock.
type Store struct {
	mu            sync.RWMutex
	seq           map[string]int64
	users         map[int64]domain.User
	clients       map[int64]domain.Client
	subscriptions map[int64]domain.Subscription
	addresses     map[int64]domain.Address
	barbers       map[int64]domain.Barber
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		seq:           make(map[string]int64),
		users:         make(map[int64]domain.User),
		clients:       make(map[int64]domain.Client),
		subscriptions: make(map[int64]domain.Subscription),
		addresses:     make(map[int64]domain.Address),
		barbers:       make(map[int64]domain.Barber),
	}
}

func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func sortedValues[T any](m map[int64]T, keep func(T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// Users returns the credential store view.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Clients returns the client repository view.
func (s *Store) Clients() repository.ClientRepository { return clientRepo{s} }

// Subscriptions returns the subscription repository view.
func (s *Store) Subscriptions() repository.SubscriptionRepository { return subscriptionRepo{s} }

// Addresses returns the address repository view.
func (s *Store) Addresses() repository.AddressRepository { return addressRepo{s} }

// Barbers returns the barber repository view.
func (s *Store) Barbers() repository.BarberRepository { return barberRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Login == user.Login {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.s.next("users")
	user.CreatedAt = time.Now().UTC()
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Login == login {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type clientRepo struct{ s *Store }

func (r clientRepo) cpfTaken(cpf string, except int64) bool {
	for id, c := range r.s.clients {
		if c.CPF == cpf && id != except {
			return true
		}
	}
	return false
}

func (r clientRepo) Create(_ context.Context, client *domain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.cpfTaken(client.CPF, 0) {
		return repository.ErrDuplicate
	}
	client.ID = r.s.next("clients")
	r.s.clients[client.ID] = *client
	return nil
}

func (r clientRepo) Update(_ context.Context, client *domain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[client.ID]; !ok {
		return repository.ErrNotFound
	}
	if r.cpfTaken(client.CPF, client.ID) {
		return repository.ErrDuplicate
	}
	r.s.clients[client.ID] = *client
	return nil
}

func (r clientRepo) Delete(_ context.Context, id int64) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.s.clients, id)
	return &c, nil
}

func (r clientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r clientRepo) GetByCPF(_ context.Context, cpf string) (*domain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.clients {
		if c.CPF == cpf {
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type subscriptionRepo struct{ s *Store }

func (r subscriptionRepo) Create(_ context.Context, sub *domain.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub.ID = r.s.next("subscriptions")
	r.s.subscriptions[sub.ID] = *sub
	return nil
}

func (r subscriptionRepo) Update(_ context.Context, sub *domain.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.subscriptions[sub.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.subscriptions[sub.ID] = *sub
	return nil
}

func (r subscriptionRepo) Delete(_ context.Context, id int64) (*domain.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub, ok := r.s.subscriptions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.s.subscriptions, id)
	return &sub, nil
}

func (r subscriptionRepo) GetByID(_ context.Context, id int64) (*domain.Subscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sub, ok := r.s.subscriptions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sub, nil
}

func (r subscriptionRepo) ListByClient(_ context.Context, clientID int64) ([]domain.Subscription, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.subscriptions, func(sub domain.Subscription) bool {
		return sub.ClientID == clientID
	}), nil
}

type addressRepo struct{ s *Store }

func (r addressRepo) Create(_ context.Context, addr *domain.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	addr.ID = r.s.next("addresses")
	r.s.addresses[addr.ID] = *addr
	return nil
}

func (r addressRepo) Update(_ context.Context, addr *domain.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.addresses[addr.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.addresses[addr.ID] = *addr
	return nil
}

func (r addressRepo) Delete(_ context.Context, id int64) (*domain.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	addr, ok := r.s.addresses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.s.addresses, id)
	return &addr, nil
}

func (r addressRepo) GetByID(_ context.Context, id int64) (*domain.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	addr, ok := r.s.addresses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &addr, nil
}

func (r addressRepo) List(_ context.Context) ([]domain.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.addresses, nil), nil
}

func (r addressRepo) ListByClient(_ context.Context, clientID int64) ([]domain.Address, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.addresses, func(addr domain.Address) bool {
		return addr.ClientID == clientID
	}), nil
}

type barberRepo struct{ s *Store }

func (r barberRepo) Create(_ context.Context, barber *domain.Barber) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	barber.ID = r.s.next("barbers")
	r.s.barbers[barber.ID] = *barber
	return nil
}

func (r barberRepo) Update(_ context.Context, barber *domain.Barber) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.barbers[barber.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.barbers[barber.ID] = *barber
	return nil
}

func (r barberRepo) Delete(_ context.Context, id int64) (*domain.Barber, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	barber, ok := r.s.barbers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.s.barbers, id)
	return &barber, nil
}

func (r barberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	barber, ok := r.s.barbers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &barber, nil
}

func (r barberRepo) List(_ context.Context) ([]domain.Barber, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.barbers, nil), nil
}
