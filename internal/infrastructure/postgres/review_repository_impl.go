package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	"github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *entity.Review) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reviews (user_email, name, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rv.UserEmail, rv.Name, rv.Rating, rv.Comment)

	return row.Scan(&rv.ID, &rv.CreatedAt)
}

func (r *ReviewRepository) ListAll(ctx context.Context) ([]entity.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_email, name, rating, comment, created_at
		FROM reviews
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Review, 0)
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.UserEmail, &rv.Name, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
