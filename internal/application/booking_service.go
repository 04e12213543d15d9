package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	repo "github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
	"github.com/oksasatya/yokoo-bicycle/pkg/mailer"
)

// JobPublisher puts email jobs on the queue. Satisfied by helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// BookingService manages rental orders.
type BookingService struct {
	Repo      repo.BookingRepository
	Publisher JobPublisher
	Logger    *logrus.Logger
}

func NewBookingService(r repo.BookingRepository, pub JobPublisher, logger *logrus.Logger) *BookingService {
	return &BookingService{Repo: r, Publisher: pub, Logger: logger}
}

type BookingInput struct {
	UserEmail   string
	UserName    string
	BicycleID   string
	BicycleName string
	Price       float64
	Date        string
	Phone       string
	Address     string
}

// Create stores the booking and enqueues a confirmation email. The email is
// best effort: a publish failure is logged, not surfaced, because the booking
// itself already succeeded.
func (s *BookingService) Create(ctx context.Context, in BookingInput) (*entity.Booking, error) {
	b := &entity.Booking{
		UserEmail:   in.UserEmail,
		UserName:    in.UserName,
		BicycleID:   in.BicycleID,
		BicycleName: in.BicycleName,
		Price:       in.Price,
		Date:        in.Date,
		Phone:       in.Phone,
		Address:     in.Address,
		OrderStatus: entity.OrderPending,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		job := mailer.EmailJob{
			To:       b.UserEmail,
			Template: mailer.BookingConfirmation,
			Data: map[string]any{
				"Name":        b.UserName,
				"BicycleName": b.BicycleName,
				"Date":        b.Date,
				"Price":       b.Price,
				"OrderStatus": b.OrderStatus,
			},
		}
		if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("booking_id", b.ID).Warn("booking email publish failed")
		}
	}

	return b, nil
}

func (s *BookingService) All(ctx context.Context) ([]entity.Booking, error) {
	return s.Repo.ListAll(ctx)
}

func (s *BookingService) ByUserEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	return s.Repo.ListByUserEmail(ctx, email)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.Repo.SetOrderStatus(ctx, id, status)
}
