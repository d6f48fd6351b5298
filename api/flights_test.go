package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/flyhigh-app/flyhigh/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Search(ctx context.Context, query flights.SearchQuery) ([]domain.Flight, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Airports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights/search?from=JFK&to=LAX&date=2026-10-12", nil)

	found := []domain.Flight{{ID: "FL1", From: "JFK", To: "LAX"}}
	mockService.On("Search", c.Request.Context(), flights.SearchQuery{
		From: "JFK", To: "LAX", Date: "2026-10-12",
	}).Return(found, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count   int             `json:"count"`
		Flights []domain.Flight `json:"flights"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "FL1", response.Flights[0].ID)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "FL1"}}
	c.Request = httptest.NewRequest("GET", "/api/flights/FL1", nil)

	flight := &domain.Flight{ID: "FL1", FlightNumber: "FH101"}
	mockService.On("GetByID", c.Request.Context(), "FL1").Return(flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "FL404"}}
	c.Request = httptest.NewRequest("GET", "/api/flights/FL404", nil)

	mockService.On("GetByID", c.Request.Context(), "FL404").Return(nil, domain.ErrFlightNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_airports(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights/airports", nil)

	airports := []domain.Airport{{Code: "JFK"}, {Code: "LAX"}}
	mockService.On("Airports", c.Request.Context()).Return(airports, nil)

	handler.airports(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count int `json:"count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
}
