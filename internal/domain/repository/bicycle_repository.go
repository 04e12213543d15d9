package repository

import (
	"context"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
)

// BicycleRepository defines the interface for catalog database operations.
type BicycleRepository interface {
	Create(ctx context.Context, b *entity.Bicycle) error
	GetByID(ctx context.Context, id string) (*entity.Bicycle, error)
	// List returns bicycles in insertion order; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]entity.Bicycle, error)
	// Delete returns ErrNotFound when no row was removed.
	Delete(ctx context.Context, id string) error
	SetImageURL(ctx context.Context, id, url string) error
}
