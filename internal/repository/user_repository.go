package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/barbershop-service/internal/domain"
)

// UserRepository is the credential store for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (login, hashed_password, position)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return mapError(r.pool.QueryRow(ctx, query,
		user.Login,
		user.PasswordHash,
		user.Position,
	).Scan(&user.ID, &user.CreatedAt))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, login, hashed_password, position, created_at
        FROM users WHERE id=$1`

	return r.scanOne(ctx, query, id)
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	const query = `
        SELECT id, login, hashed_password, position, created_at
        FROM users WHERE login=$1`

	return r.scanOne(ctx, query, login)
}

func (r *userRepository) scanOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Login,
		&user.PasswordHash,
		&user.Position,
		&user.CreatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}
