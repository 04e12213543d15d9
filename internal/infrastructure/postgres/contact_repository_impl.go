package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	"github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.Name, c.Email, c.Message)

	return row.Scan(&c.ID, &c.CreatedAt)
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
