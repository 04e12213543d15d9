package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	repo "github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
)

// ErrForbidden is returned by Elevate when the principal is absent or is not
// an admin. The message is part of the frontend contract.
var ErrForbidden = errors.New("you do not have access to make admin")

// AccountService owns account records and the authorization gate for
// privilege escalation.
type AccountService struct {
	Repo   repo.AccountRepository
	Logger *logrus.Logger
}

func NewAccountService(r repo.AccountRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: r, Logger: logger}
}

type AccountInput struct {
	Email    string
	Name     string
	PhotoURL string
}

// Register creates an account with the standard role.
func (s *AccountService) Register(ctx context.Context, in AccountInput) (*entity.Account, error) {
	a := &entity.Account{Email: in.Email, Name: in.Name, PhotoURL: in.PhotoURL, Role: entity.RoleStandard}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Upsert creates the account on first login or merges profile fields onto an
// existing one. The role is never touched here.
func (s *AccountService) Upsert(ctx context.Context, in AccountInput) (*entity.Account, error) {
	a := &entity.Account{Email: in.Email, Name: in.Name, PhotoURL: in.PhotoURL}
	if err := s.Repo.UpsertByEmail(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// IsAdmin reports whether the account for email holds the admin role.
// A missing account is not an error; it is simply not an admin.
func (s *AccountService) IsAdmin(ctx context.Context, email string) (bool, error) {
	a, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return a.IsAdmin(), nil
}

// Elevate grants the admin role to targetEmail, provided principalEmail
// belongs to an existing admin account.
//
// The decision is made before any mutation: an absent principal, an unknown
// principal account, or a non-admin principal all yield ErrForbidden and
// leave the target untouched. Store failures propagate as-is and must not be
// reported as authorization failures.
//
// The role write is an upsert keyed by email, so elevating an email with no
// prior account creates one already holding the admin role. Elevation is
// idempotent; self-elevation by an admin is a permitted no-op.
func (s *AccountService) Elevate(ctx context.Context, principalEmail, targetEmail string) error {
	if principalEmail == "" {
		return ErrForbidden
	}

	requester, err := s.Repo.FindByEmail(ctx, principalEmail)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !requester.IsAdmin() {
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{
				"principal": principalEmail,
				"target":    targetEmail,
			}).Warn("elevation denied: principal is not admin")
		}
		return ErrForbidden
	}

	return s.Repo.SetRole(ctx, targetEmail, entity.RoleAdmin)
}
