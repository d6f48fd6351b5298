package api

import (
	"net/http"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/flyhigh-app/flyhigh/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID   string                  `json:"flightId" binding:"required"`
	Passengers []domain.Passenger      `json:"passengers" binding:"required,min=1"`
	FareClass  domain.FareClass        `json:"fareClass" binding:"required"`
	Seats      []*string               `json:"seats"`
	Services   domain.ServiceSelection `json:"services"`
}

type rescheduleBookingRequest struct {
	NewFlightID string `json:"newFlightId" binding:"required"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.PATCH("/:id/cancel", h.cancel)
	router.PATCH("/:id/reschedule", h.reschedule)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), booking.CreateBookingInput{
		UserID:     identityFrom(c).UserID,
		FlightID:   req.FlightID,
		Passengers: req.Passengers,
		FareClass:  req.FareClass,
		Seats:      req.Seats,
		Services:   req.Services,
	})
	if err != nil {
		respondError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"booking": created,
	})
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListForUser(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(bookings),
		"bookings": bookings,
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	found, err := h.service.GetByID(c.Request.Context(), c.Param("id"), identityFrom(c))
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": found})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	cancelled, err := h.service.Cancel(c.Request.Context(), c.Param("id"), identityFrom(c).UserID)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
		"booking": cancelled,
	})
}

func (h *BookingHandler) reschedule(c *gin.Context) {
	var req rescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.service.Reschedule(c.Request.Context(), c.Param("id"), identityFrom(c).UserID, req.NewFlightID)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking rescheduled successfully",
		"booking": updated,
	})
}
