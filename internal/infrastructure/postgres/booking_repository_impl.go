package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	"github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	if b.OrderStatus == "" {
		b.OrderStatus = entity.OrderPending
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (user_email, user_name, bicycle_id, bicycle_name, price, date, phone, address, order_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, b.UserEmail, b.UserName, nullIfEmpty(b.BicycleID), b.BicycleName, b.Price, b.Date, b.Phone, b.Address, b.OrderStatus)

	return row.Scan(&b.ID, &b.CreatedAt)
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]entity.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_email, user_name, COALESCE(bicycle_id::text, ''), bicycle_name, price, date, phone, address, order_status, created_at
		FROM bookings
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

func (r *BookingRepository) ListByUserEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_email, user_name, COALESCE(bicycle_id::text, ''), bicycle_name, price, date, phone, address, order_status, created_at
		FROM bookings
		WHERE user_email = $1
		ORDER BY created_at
	`, email)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) SetOrderStatus(ctx context.Context, id, status string) error {
	res, err := r.pool.Exec(ctx, `UPDATE bookings SET order_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanBookings(rows pgx.Rows) ([]entity.Booking, error) {
	defer rows.Close()
	out := make([]entity.Booking, 0)
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.UserEmail, &b.UserName, &b.BicycleID, &b.BicycleName,
			&b.Price, &b.Date, &b.Phone, &b.Address, &b.OrderStatus, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
