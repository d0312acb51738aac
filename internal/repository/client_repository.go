package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/barbershop-service/internal/domain"
)

// ClientRepository defines persistence access for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Client, error)
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (cpf, name, phone)
        VALUES ($1, $2, $3)
        RETURNING id`

	return mapError(r.pool.QueryRow(ctx, query,
		client.CPF,
		client.Name,
		client.Phone,
	).Scan(&client.ID))
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	const query = `
        UPDATE clients SET cpf=$1, name=$2, phone=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		client.CPF,
		client.Name,
		client.Phone,
		client.ID,
	)
	if err != nil {
		return mapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id int64) (*domain.Client, error) {
	const query = `
        DELETE FROM clients WHERE id=$1
        RETURNING id, cpf, name, phone`

	return scanClient(r.pool.QueryRow(ctx, query, id))
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	const query = `
        SELECT id, cpf, name, phone
        FROM clients WHERE id=$1`

	return scanClient(r.pool.QueryRow(ctx, query, id))
}

func (r *clientRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	const query = `
        SELECT id, cpf, name, phone
        FROM clients WHERE cpf=$1`

	return scanClient(r.pool.QueryRow(ctx, query, cpf))
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var client domain.Client
	if err := row.Scan(&client.ID, &client.CPF, &client.Name, &client.Phone); err != nil {
		return nil, mapError(err)
	}
	return &client, nil
}
