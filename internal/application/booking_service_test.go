package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	repo "github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
	"github.com/oksasatya/yokoo-bicycle/pkg/mailer"
)

type memBookingRepo struct {
	mu     sync.Mutex
	byID   map[string]*entity.Booking
	nextID int
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{byID: map[string]*entity.Booking{}}
}

func (m *memBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.OrderStatus == "" {
		b.OrderStatus = entity.OrderPending
	}
	m.nextID++
	b.ID = fmt.Sprintf("bk-%d", m.nextID)
	cp := *b
	m.byID[b.ID] = &cp
	return nil
}

func (m *memBookingRepo) ListAll(_ context.Context) ([]entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Booking, 0, len(m.byID))
	for _, b := range m.byID {
		out = append(out, *b)
	}
	return out, nil
}

func (m *memBookingRepo) ListByUserEmail(_ context.Context, email string) ([]entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Booking, 0)
	for _, b := range m.byID {
		if b.UserEmail == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memBookingRepo) SetOrderStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return repo.ErrNotFound
	}
	b.OrderStatus = status
	return nil
}

var _ repo.BookingRepository = (*memBookingRepo)(nil)

type capturingPublisher struct {
	jobs []mailer.EmailJob
	err  error
}

func (p *capturingPublisher) PublishJSON(_ context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body.(mailer.EmailJob))
	return nil
}

func TestBookingCreate_EnqueuesConfirmationEmail(t *testing.T) {
	r := newMemBookingRepo()
	pub := &capturingPublisher{}
	svc := NewBookingService(r, pub, nil)

	b, err := svc.Create(context.Background(), BookingInput{
		UserEmail:   "rider@x.com",
		UserName:    "Rider",
		BicycleName: "Yokoo Sprinter",
		Price:       349.99,
		Date:        "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, b.OrderStatus)

	require.Len(t, pub.jobs, 1)
	job := pub.jobs[0]
	assert.Equal(t, "rider@x.com", job.To)
	assert.Equal(t, mailer.BookingConfirmation, job.Template)
	assert.Equal(t, "Yokoo Sprinter", job.Data["BicycleName"])
}

func TestBookingCreate_PublishFailureDoesNotFailBooking(t *testing.T) {
	r := newMemBookingRepo()
	pub := &capturingPublisher{err: errors.New("broker down")}
	svc := NewBookingService(r, pub, nil)

	b, err := svc.Create(context.Background(), BookingInput{
		UserEmail:   "rider@x.com",
		BicycleName: "Yokoo Trail X",
		Price:       479,
		Date:        "2024-06-02",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
}

func TestBookingCreate_NilPublisher(t *testing.T) {
	svc := NewBookingService(newMemBookingRepo(), nil, nil)

	_, err := svc.Create(context.Background(), BookingInput{
		UserEmail:   "rider@x.com",
		BicycleName: "Yokoo Cruiser",
		Price:       289.5,
		Date:        "2024-06-03",
	})
	require.NoError(t, err)
}

func TestBookingByUserEmail_ExactMatchOnly(t *testing.T) {
	r := newMemBookingRepo()
	svc := NewBookingService(r, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, BookingInput{UserEmail: "a@x.com", BicycleName: "One", Price: 1, Date: "d"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, BookingInput{UserEmail: "b@x.com", BicycleName: "Two", Price: 2, Date: "d"})
	require.NoError(t, err)

	got, err := svc.ByUserEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "One", got[0].BicycleName)
}

func TestBookingUpdateStatus(t *testing.T) {
	r := newMemBookingRepo()
	svc := NewBookingService(r, nil, nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, BookingInput{UserEmail: "a@x.com", BicycleName: "One", Price: 1, Date: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, b.ID, entity.OrderShipped))
	list, err := svc.ByUserEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipped, list[0].OrderStatus)

	err = svc.UpdateStatus(ctx, "missing", entity.OrderShipped)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
