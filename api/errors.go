package api

import (
	"errors"
	"net/http"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain sentinel errors to HTTP status codes; unknown errors
// get the handler's fallback.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrBookingExists),
		errors.Is(err, domain.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientSeats),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrInvalidFareClass):
		return http.StatusBadRequest
	default:
		return fallback
	}
}

func respondError(c *gin.Context, err error, fallback int) {
	c.JSON(statusFor(err, fallback), gin.H{"success": false, "message": err.Error()})
}
