package repository

import (
	"context"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
)

// BookingRepository defines the interface for booking database operations.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	ListAll(ctx context.Context) ([]entity.Booking, error)
	ListByUserEmail(ctx context.Context, email string) ([]entity.Booking, error)
	// Delete returns ErrNotFound when no row was removed.
	Delete(ctx context.Context, id string) error
	// SetOrderStatus returns ErrNotFound when the booking does not exist.
	SetOrderStatus(ctx context.Context, id, status string) error
}
