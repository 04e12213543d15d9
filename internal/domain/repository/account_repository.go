package repository

import (
	"context"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
)

// AccountRepository is the account store consumed by the authorization gate.
// Uniqueness on email is the store's responsibility (UNIQUE column + upserts).
type AccountRepository interface {
	Create(ctx context.Context, a *entity.Account) error
	// FindByEmail returns ErrNotFound when no account exists for email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// UpsertByEmail creates the account if absent, otherwise merges the
	// profile fields onto the existing record. Role is preserved on update.
	UpsertByEmail(ctx context.Context, a *entity.Account) error
	// SetRole upserts only the role, creating the account when absent.
	SetRole(ctx context.Context, email string, role entity.Role) error
}
