package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flyhigh-app/flyhigh/internal/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BookingEvent is published on every booking lifecycle transition and
// consumed by the notifications worker.
type BookingEvent struct {
	Type             string    `json:"type"`
	BookingID        string    `json:"bookingId"`
	BookingReference string    `json:"bookingReference"`
	UserID           string    `json:"userId"`
	FlightID         string    `json:"flightId"`
	FlightNumber     string    `json:"flightNumber"`
	Status           string    `json:"status"`
	TotalPriceCents  int64     `json:"totalPrice"`
	OccurredAt       time.Time `json:"occurredAt"`
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &Producer{brokers: brokers, writer: writer}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}

	logger.L().Debug("published booking event", zap.String("topic", topic), zap.String("key", key))
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
