package repository

import (
	"context"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
)

// ReviewRepository defines the interface for review database operations.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	ListAll(ctx context.Context) ([]entity.Review, error)
}
