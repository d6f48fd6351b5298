package api

import (
	"net/http"

	"github.com/flyhigh-app/flyhigh/internal/repository"
	"github.com/flyhigh-app/flyhigh/internal/service/users"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service users.UserUseCase
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Passport string `json:"passport"`
}

type addTravelerRequest struct {
	Name           string `json:"name" binding:"required"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber"`
	Nationality    string `json:"nationality"`
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.PATCH("/profile", h.updateProfile)
	router.GET("/travelers", h.travelers)
	router.POST("/travelers", h.addTraveler)
	router.DELETE("/travelers/:travelerId", h.removeTraveler)
}

func (h *UserHandler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), identityFrom(c).UserID, repository.ProfileUpdate{
		Name:     req.Name,
		Phone:    req.Phone,
		Passport: req.Passport,
	})
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) travelers(c *gin.Context) {
	travelers, err := h.service.Travelers(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "travelers": travelers})
}

func (h *UserHandler) addTraveler(c *gin.Context) {
	var req addTravelerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	traveler, err := h.service.AddTraveler(c.Request.Context(), identityFrom(c).UserID, users.TravelerInput{
		Name:           req.Name,
		DateOfBirth:    req.DateOfBirth,
		PassportNumber: req.PassportNumber,
		Nationality:    req.Nationality,
	})
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Traveler added successfully",
		"traveler": traveler,
	})
}

func (h *UserHandler) removeTraveler(c *gin.Context) {
	err := h.service.RemoveTraveler(c.Request.Context(), identityFrom(c).UserID, c.Param("travelerId"))
	if err != nil {
		respondError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Traveler removed successfully"})
}
