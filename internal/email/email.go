package email

import (
	"context"

	"github.com/flyhigh-app/flyhigh/internal/kafka"
	"github.com/flyhigh-app/flyhigh/internal/logger"
	"go.uber.org/zap"
)

// Sender is a stand-in for a real mail gateway: it logs the notification
// that would be sent for a booking event.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(_ context.Context, event kafka.BookingEvent) error {
	logger.L().Info("send booking notification",
		zap.String("type", event.Type),
		zap.String("userId", event.UserID),
		zap.String("bookingReference", event.BookingReference),
		zap.String("flightNumber", event.FlightNumber),
	)
	return nil
}
