package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flyhigh-app/flyhigh/config"
	"github.com/flyhigh-app/flyhigh/internal/bootstrap"
	"github.com/flyhigh-app/flyhigh/internal/cache"
	"github.com/flyhigh-app/flyhigh/internal/catalog"
	"github.com/flyhigh-app/flyhigh/internal/kafka"
	"github.com/flyhigh-app/flyhigh/internal/logger"
	"github.com/flyhigh-app/flyhigh/internal/repository"
	"github.com/flyhigh-app/flyhigh/internal/service/auth"
	"github.com/flyhigh-app/flyhigh/internal/service/booking"
	"github.com/flyhigh-app/flyhigh/internal/service/flights"
	"github.com/flyhigh-app/flyhigh/internal/service/users"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init()
	defer logger.L().Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightCatalog := catalog.New()
	bookingRepo := repository.NewBookingRepository()
	userRepo := repository.NewUserRepository()

	if err := auth.SeedUsers(ctx, userRepo); err != nil {
		log.Fatalf("seed users: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	svc := bootstrap.Services{
		Flights: flights.NewFlightService(flightCatalog, redisCache),
		Bookings: booking.NewBookingService(
			bookingRepo,
			flightCatalog,
			producer,
			cfg.Kafka.BookingTopic,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
		Auth:   auth.NewAuthService(userRepo, tokens),
		Users:  users.NewUserService(userRepo),
		Tokens: tokens,
	}

	if err := bootstrap.Run(ctx, cfg, svc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
