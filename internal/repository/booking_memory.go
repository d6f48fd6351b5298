package repository

import (
	"context"
	"sync"
	"time"

	"github.com/flyhigh-app/flyhigh/internal/domain"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	Cancel(ctx context.Context, id string, at time.Time) (*domain.Booking, error)
	Reschedule(ctx context.Context, id string, flightID string, snapshot domain.FlightSnapshot, at time.Time) (*domain.Booking, error)
}

// MemoryBookingRepository keeps bookings in creation order. Cancel and
// Reschedule are single critical sections, so the find-then-mutate sequence
// cannot interleave with another writer.
type MemoryBookingRepository struct {
	mu    sync.RWMutex
	order []*domain.Booking
	byID  map[string]*domain.Booking
}

func NewBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{byID: make(map[string]*domain.Booking)}
}

func (r *MemoryBookingRepository) Insert(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[booking.ID]; ok {
		return domain.ErrBookingExists
	}
	stored := booking.Clone()
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored)
	return nil
}

func (r *MemoryBookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return b.Clone(), nil
}

func (r *MemoryBookingRepository) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, b := range r.order {
		if b.UserID == userID {
			out = append(out, *b.Clone())
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) ListAll(_ context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, 0, len(r.order))
	for _, b := range r.order {
		out = append(out, *b.Clone())
	}
	return out, nil
}

// Cancel transitions a confirmed booking to cancelled. The transition is
// terminal: cancelling twice fails with ErrAlreadyCancelled and leaves the
// record untouched.
func (r *MemoryBookingRepository) Cancel(_ context.Context, id string, at time.Time) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	b.Status = domain.BookingStatusCancelled
	cancelledAt := at
	b.CancelledAt = &cancelledAt
	b.RefundStatus = domain.RefundStatusProcessing
	return b.Clone(), nil
}

// Reschedule replaces the flight snapshot. Pricing and status are never
// touched here.
func (r *MemoryBookingRepository) Reschedule(_ context.Context, id string, flightID string, snapshot domain.FlightSnapshot, at time.Time) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	b.FlightID = flightID
	b.Flight = snapshot
	rescheduledAt := at
	b.RescheduledAt = &rescheduledAt
	return b.Clone(), nil
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
