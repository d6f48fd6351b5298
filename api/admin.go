package api

import (
	"net/http"

	"github.com/flyhigh-app/flyhigh/internal/service/booking"
	"github.com/flyhigh-app/flyhigh/internal/service/users"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookings booking.BookingUseCase
	users    users.UserUseCase
}

func NewAdminHandler(bookings booking.BookingUseCase, users users.UserUseCase) *AdminHandler {
	return &AdminHandler{bookings: bookings, users: users}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/dashboard/stats", h.stats)
	router.GET("/bookings", h.listBookings)
	router.GET("/users", h.listUsers)
}

func (h *AdminHandler) stats(c *gin.Context) {
	stats, err := h.bookings.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}
	allUsers, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalBookings":       stats.TotalBookings,
			"confirmedBookings":   stats.ConfirmedBookings,
			"cancelledBookings":   stats.CancelledBookings,
			"totalRevenue":        stats.TotalRevenueCents,
			"averageBookingValue": stats.AverageBookingValueCents,
			"totalUsers":          len(allUsers),
		},
	})
}

func (h *AdminHandler) listBookings(c *gin.Context) {
	bookings, err := h.bookings.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(bookings), "bookings": bookings})
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	allUsers, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(allUsers), "users": allUsers})
}
