package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	"github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
)

type BicycleRepository struct {
	pool *pgxpool.Pool
}

func NewBicycleRepository(pool *pgxpool.Pool) *BicycleRepository {
	return &BicycleRepository{pool: pool}
}

func (r *BicycleRepository) Create(ctx context.Context, b *entity.Bicycle) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bicycles (name, description, price, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, b.Name, b.Description, b.Price, b.ImageURL)

	return row.Scan(&b.ID, &b.CreatedAt)
}

func (r *BicycleRepository) GetByID(ctx context.Context, id string) (*entity.Bicycle, error) {
	b := &entity.Bicycle{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price, image_url, created_at
		FROM bicycles
		WHERE id = $1
	`, id)

	if err := row.Scan(&b.ID, &b.Name, &b.Description, &b.Price, &b.ImageURL, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return b, nil
}

func (r *BicycleRepository) List(ctx context.Context, limit int) ([]entity.Bicycle, error) {
	q := `
		SELECT id, name, description, price, image_url, created_at
		FROM bicycles
		ORDER BY created_at
	`
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.pool.Query(ctx, q+` LIMIT $1`, limit)
	} else {
		rows, err = r.pool.Query(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Bicycle, 0)
	for rows.Next() {
		var b entity.Bicycle
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Price, &b.ImageURL, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BicycleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM bicycles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BicycleRepository) SetImageURL(ctx context.Context, id, url string) error {
	res, err := r.pool.Exec(ctx, `UPDATE bicycles SET image_url = $1 WHERE id = $2`, url, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.BicycleRepository = (*BicycleRepository)(nil)
