package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/flyhigh-app/flyhigh/api"
	"github.com/flyhigh-app/flyhigh/config"
	"github.com/flyhigh-app/flyhigh/internal/service/auth"
	"github.com/flyhigh-app/flyhigh/internal/service/booking"
	"github.com/flyhigh-app/flyhigh/internal/service/flights"
	"github.com/flyhigh-app/flyhigh/internal/service/users"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
	Auth     auth.AuthUseCase
	Users    users.UserUseCase
	Tokens   *auth.TokenManager
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires all handlers onto a gin engine.
func NewRouter(svc Services) *gin.Engine {
	router := gin.Default()

	root := router.Group("/api")
	root.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "FlyHigh API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	authHandler := api.NewAuthHandler(svc.Auth)
	authHandler.RegisterPublic(root.Group("/auth"))

	api.NewFlightHandler(svc.Flights).Register(root.Group("/flights"))

	protected := root.Group("")
	protected.Use(api.Authenticate(svc.Tokens))

	authHandler.RegisterProtected(protected.Group("/auth"))
	api.NewBookingHandler(svc.Bookings).Register(protected.Group("/bookings"))
	api.NewUserHandler(svc.Users).Register(protected.Group("/users"))

	admin := protected.Group("/admin")
	admin.Use(api.AdminOnly())
	api.NewAdminHandler(svc.Bookings, svc.Users).Register(admin)

	return router
}
