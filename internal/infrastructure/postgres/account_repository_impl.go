package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	"github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	if a.Role == "" {
		a.Role = entity.RoleStandard
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (email, name, photo_url, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, a.Email, a.Name, a.PhotoURL, a.Role)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	a := &entity.Account{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, name, photo_url, role, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`, email)

	if err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PhotoURL, &a.Role,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

// UpsertByEmail merges profile fields onto an existing account, or creates it
// with role standard. The role column is deliberately untouched on conflict:
// only SetRole mutates it.
func (r *AccountRepository) UpsertByEmail(ctx context.Context, a *entity.Account) error {
	if a.Role == "" {
		a.Role = entity.RoleStandard
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (email, name, photo_url, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, photo_url = EXCLUDED.photo_url, updated_at = now()
		RETURNING id, role, created_at, updated_at
	`, a.Email, a.Name, a.PhotoURL, a.Role)

	return row.Scan(&a.ID, &a.Role, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AccountRepository) SetRole(ctx context.Context, email string, role entity.Role) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (email, role)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE
		SET role = EXCLUDED.role, updated_at = now()
	`, email, role)
	return err
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
