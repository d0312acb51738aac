package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/barbershop-service/internal/domain"
)

// BarberRepository manages barber persistence.
type BarberRepository interface {
	Create(ctx context.Context, barber *domain.Barber) error
	Update(ctx context.Context, barber *domain.Barber) error
	Delete(ctx context.Context, id int64) (*domain.Barber, error)
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	List(ctx context.Context) ([]domain.Barber, error)
}

type barberRepository struct {
	pool *pgxpool.Pool
}

// NewBarberRepository builds the repository.
func NewBarberRepository(pool *pgxpool.Pool) BarberRepository {
	return &barberRepository{pool: pool}
}

func (r *barberRepository) Create(ctx context.Context, barber *domain.Barber) error {
	const query = `INSERT INTO barbers (name) VALUES ($1) RETURNING id`
	return mapError(r.pool.QueryRow(ctx, query, barber.Name).Scan(&barber.ID))
}

func (r *barberRepository) Update(ctx context.Context, barber *domain.Barber) error {
	const query = `UPDATE barbers SET name=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, barber.Name, barber.ID)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *barberRepository) Delete(ctx context.Context, id int64) (*domain.Barber, error) {
	const query = `DELETE FROM barbers WHERE id=$1 RETURNING id, name`
	var barber domain.Barber
	if err := r.pool.QueryRow(ctx, query, id).Scan(&barber.ID, &barber.Name); err != nil {
		return nil, mapError(err)
	}
	return &barber, nil
}

func (r *barberRepository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	const query = `SELECT id, name FROM barbers WHERE id=$1`
	var barber domain.Barber
	if err := r.pool.QueryRow(ctx, query, id).Scan(&barber.ID, &barber.Name); err != nil {
		return nil, mapError(err)
	}
	return &barber, nil
}

func (r *barberRepository) List(ctx context.Context) ([]domain.Barber, error) {
	const query = `SELECT id, name FROM barbers ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []domain.Barber
	for rows.Next() {
		var barber domain.Barber
		if err := rows.Scan(&barber.ID, &barber.Name); err != nil {
			return nil, err
		}
		result = append(result, barber)
	}
	return result, rows.Err()
}
