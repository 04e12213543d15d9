package repository

import (
	"context"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
)

// ContactRepository defines the interface for contact-form database operations.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
}
