package application

import (
	"context"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	repo "github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
)

// FeedbackService stores reviews and contact-form messages.
type FeedbackService struct {
	Reviews  repo.ReviewRepository
	Contacts repo.ContactRepository
}

func NewFeedbackService(reviews repo.ReviewRepository, contacts repo.ContactRepository) *FeedbackService {
	return &FeedbackService{Reviews: reviews, Contacts: contacts}
}

type ReviewInput struct {
	UserEmail string
	Name      string
	Rating    int
	Comment   string
}

func (s *FeedbackService) AddReview(ctx context.Context, in ReviewInput) (*entity.Review, error) {
	r := &entity.Review{UserEmail: in.UserEmail, Name: in.Name, Rating: in.Rating, Comment: in.Comment}
	if err := s.Reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *FeedbackService) AllReviews(ctx context.Context) ([]entity.Review, error) {
	return s.Reviews.ListAll(ctx)
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

func (s *FeedbackService) AddContact(ctx context.Context, in ContactInput) (*entity.Contact, error) {
	c := &entity.Contact{Name: in.Name, Email: in.Email, Message: in.Message}
	if err := s.Contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
