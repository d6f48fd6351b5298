package booking

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/flyhigh-app/flyhigh/internal/kafka"
	"github.com/flyhigh-app/flyhigh/internal/logger"
	"github.com/flyhigh-app/flyhigh/internal/pricing"
	"github.com/flyhigh-app/flyhigh/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID string, identity domain.Identity) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
	Cancel(ctx context.Context, bookingID, requestingUserID string) (*domain.Booking, error)
	Reschedule(ctx context.Context, bookingID, requestingUserID, newFlightID string) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	Stats(ctx context.Context) (*Stats, error)
}

// FlightCatalog is the read-only flight lookup the lifecycle depends on.
type FlightCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	catalog            FlightCatalog
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
	newID              func() string
}

type CreateBookingInput struct {
	UserID     string
	FlightID   string
	Passengers []domain.Passenger
	FareClass  domain.FareClass
	Seats      []*string
	Services   domain.ServiceSelection
}

type Stats struct {
	TotalBookings            int   `json:"totalBookings"`
	ConfirmedBookings        int   `json:"confirmedBookings"`
	CancelledBookings        int   `json:"cancelledBookings"`
	TotalRevenueCents        int64 `json:"totalRevenue"`
	AverageBookingValueCents int64 `json:"averageBookingValue"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock substitutes the timestamp source, used by tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// WithIDGenerator substitutes the booking id source, used by tests.
func WithIDGenerator(newID func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newID = newID
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	catalog FlightCatalog,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		catalog:      catalog,
		producer:     producer,
		bookingTopic: bookingTopic,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if len(input.Passengers) == 0 {
		return nil, errors.New("at least one passenger is required")
	}
	if input.Seats != nil && len(input.Seats) != len(input.Passengers) {
		return nil, errors.New("seats must have one slot per passenger")
	}

	flight, err := s.catalog.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}

	unitPrice, ok := flight.PricingCents[input.FareClass]
	if !ok {
		return nil, domain.ErrInvalidFareClass
	}
	if flight.AvailableSeats[input.FareClass] < len(input.Passengers) {
		return nil, domain.ErrInsufficientSeats
	}

	seats := input.Seats
	if seats == nil {
		seats = make([]*string, len(input.Passengers))
	}

	now := s.now()
	booking := &domain.Booking{
		ID:               s.newID(),
		UserID:           input.UserID,
		FlightID:         flight.ID,
		Flight:           flight.Snapshot(),
		Passengers:       input.Passengers,
		FareClass:        input.FareClass,
		Seats:            seats,
		Services:         input.Services,
		Pricing:          pricing.Quote(unitPrice, len(input.Passengers), input.Services),
		Status:           domain.BookingStatusConfirmed,
		BookingReference: reference(now),
		PaymentStatus:    domain.PaymentStatusCompleted,
		CreatedAt:        now,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID string, identity domain.Identity) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != identity.UserID && identity.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, requestingUserID string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.UserID != requestingUserID {
		return nil, domain.ErrForbidden
	}

	// the status check happens inside the store, under its lock
	cancelled, err := s.bookings.Cancel(ctx, bookingID, s.now())
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_cancelled", cancelled)
	return cancelled, nil
}

// Reschedule swaps the flight snapshot. It never revalidates seat
// availability and never recomputes the stored pricing.
func (s *BookingService) Reschedule(ctx context.Context, bookingID, requestingUserID, newFlightID string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.UserID != requestingUserID {
		return nil, domain.ErrForbidden
	}

	newFlight, err := s.catalog.GetByID(ctx, newFlightID)
	if err != nil {
		return nil, err
	}

	updated, err := s.bookings.Reschedule(ctx, bookingID, newFlight.ID, newFlight.Snapshot(), s.now())
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_rescheduled", updated)
	return updated, nil
}

func (s *BookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *BookingService) Stats(ctx context.Context) (*Stats, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusConfirmed:
			stats.ConfirmedBookings++
		case domain.BookingStatusCancelled:
			stats.CancelledBookings++
		}
		stats.TotalRevenueCents += b.Pricing.TotalPriceCents
	}
	if stats.TotalBookings > 0 {
		stats.AverageBookingValueCents = stats.TotalRevenueCents / int64(stats.TotalBookings)
	}
	return stats, nil
}

// reference builds the human-facing code from the creation time: "FH" plus
// the last 8 digits of the unix-millisecond timestamp.
func reference(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "FH" + ms
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:             eventType,
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		UserID:           booking.UserID,
		FlightID:         booking.FlightID,
		FlightNumber:     booking.Flight.FlightNumber,
		Status:           string(booking.Status),
		TotalPriceCents:  booking.Pricing.TotalPriceCents,
		OccurredAt:       s.now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		logger.L().Warn("publish booking event failed",
			zap.String("type", eventType), zap.String("bookingId", booking.ID), zap.Error(err))
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			logger.L().Warn("publish notification event failed",
				zap.String("type", eventType), zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
