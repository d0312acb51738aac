package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/barbershop-service/internal/domain"
)

// AddressRepository defines persistence access for client addresses.
type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) error
	Update(ctx context.Context, addr *domain.Address) error
	Delete(ctx context.Context, id int64) (*domain.Address, error)
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	List(ctx context.Context) ([]domain.Address, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Address, error)
}

type addressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository returns a Postgres-backed implementation.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

const addressColumns = `id, client_id, street, number, neighborhood, city, complement`

func (r *addressRepository) Create(ctx context.Context, addr *domain.Address) error {
	const query = `
        INSERT INTO addresses (client_id, street, number, neighborhood, city, complement)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return mapError(r.pool.QueryRow(ctx, query,
		addr.ClientID,
		addr.Street,
		addr.Number,
		addr.Neighborhood,
		addr.City,
		addr.Complement,
	).Scan(&addr.ID))
}

func (r *addressRepository) Update(ctx context.Context, addr *domain.Address) error {
	const query = `
        UPDATE addresses SET client_id=$1, street=$2, number=$3, neighborhood=$4, city=$5, complement=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		addr.ClientID,
		addr.Street,
		addr.Number,
		addr.Neighborhood,
		addr.City,
		addr.Complement,
		addr.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id int64) (*domain.Address, error) {
	query := `DELETE FROM addresses WHERE id=$1 RETURNING ` + addressColumns
	return scanAddress(r.pool.QueryRow(ctx, query, id))
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id=$1`
	return scanAddress(r.pool.QueryRow(ctx, query, id))
}

func (r *addressRepository) List(ctx context.Context) ([]domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses ORDER BY id`
	return r.list(ctx, query)
}

func (r *addressRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE client_id=$1 ORDER BY id`
	return r.list(ctx, query, clientID)
}

func (r *addressRepository) list(ctx context.Context, query string, args ...any) ([]domain.Address, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *addr)
	}
	return result, rows.Err()
}

func scanAddress(row rowScanner) (*domain.Address, error) {
	var addr domain.Address
	if err := row.Scan(
		&addr.ID,
		&addr.ClientID,
		&addr.Street,
		&addr.Number,
		&addr.Neighborhood,
		&addr.City,
		&addr.Complement,
	); err != nil {
		return nil, mapError(err)
	}
	return &addr, nil
}
