package api

import (
	"net/http"

	"github.com/flyhigh-app/flyhigh/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
	router.GET("/airports", h.airports)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) search(c *gin.Context) {
	query := flights.SearchQuery{
		From: c.Query("from"),
		To:   c.Query("to"),
		Date: c.Query("date"),
	}

	found, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(found), "flights": found})
}

func (h *FlightHandler) airports(c *gin.Context) {
	airports, err := h.service.Airports(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(airports), "airports": airports})
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "flight": flight})
}
