package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/barbershop-service/internal/domain"
)

// SubscriptionRepository defines persistence access for subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	Update(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, id int64) (*domain.Subscription, error)
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error)
}

type subscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepository returns a Postgres-backed implementation.
func NewSubscriptionRepository(pool *pgxpool.Pool) SubscriptionRepository {
	return &subscriptionRepository{pool: pool}
}

const subscriptionColumns = `id, client_id, start_date, end_date, duration, payment_method`

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	const query = `
        INSERT INTO subscriptions (client_id, start_date, end_date, duration, payment_method)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	return mapError(r.pool.QueryRow(ctx, query,
		sub.ClientID,
		sub.StartDate,
		sub.EndDate,
		sub.Duration,
		sub.PaymentMethod,
	).Scan(&sub.ID))
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	const query = `
        UPDATE subscriptions SET client_id=$1, start_date=$2, end_date=$3, duration=$4, payment_method=$5
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		sub.ClientID,
		sub.StartDate,
		sub.EndDate,
		sub.Duration,
		sub.PaymentMethod,
		sub.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id int64) (*domain.Subscription, error) {
	query := `DELETE FROM subscriptions WHERE id=$1 RETURNING ` + subscriptionColumns
	return scanSubscription(r.pool.QueryRow(ctx, query, id))
}

func (r *subscriptionRepository) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id=$1`
	return scanSubscription(r.pool.QueryRow(ctx, query, id))
}

func (r *subscriptionRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE client_id=$1 ORDER BY start_date, id`
	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sub)
	}
	return result, rows.Err()
}

func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var sub domain.Subscription
	if err := row.Scan(
		&sub.ID,
		&sub.ClientID,
		&sub.StartDate,
		&sub.EndDate,
		&sub.Duration,
		&sub.PaymentMethod,
	); err != nil {
		return nil, mapError(err)
	}
	return &sub, nil
}
