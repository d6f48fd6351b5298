package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/flyhigh-app/flyhigh/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Create(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetByID(ctx context.Context, bookingID string, identity domain.Identity) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, bookingID, requestingUserID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Reschedule(ctx context.Context, bookingID, requestingUserID, newFlightID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, requestingUserID, newFlightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Stats(ctx context.Context) (*booking.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Stats), args.Error(1)
}

func testContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ctxUserID, "u1")
	c.Set(ctxRole, string(domain.RoleUser))
	return c, w
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := testContext(t, "POST", "/api/bookings", gin.H{
		"flightId": "FL1",
		"passengers": []gin.H{
			{"firstName": "John", "lastName": "Doe"},
		},
		"fareClass": "economy",
		"services":  gin.H{"baggage": 1, "insurance": true},
	})

	created := &domain.Booking{
		ID:     "b1",
		UserID: "u1",
		Status: domain.BookingStatusConfirmed,
		Pricing: domain.Pricing{
			FlightPriceCents: 20000, ServicesPriceCents: 8000, TotalPriceCents: 28000,
		},
	}
	mockService.On("Create", c.Request.Context(), mock.MatchedBy(func(input booking.CreateBookingInput) bool {
		return input.UserID == "u1" && input.FlightID == "FL1" && input.Services.Insurance
	})).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Success bool           `json:"success"`
		Booking domain.Booking `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "b1", response.Booking.ID)
	assert.Equal(t, int64(28000), response.Booking.Pricing.TotalPriceCents)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_InsufficientSeats(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := testContext(t, "POST", "/api/bookings", gin.H{
		"flightId":   "FL1",
		"passengers": []gin.H{{"firstName": "A"}, {"firstName": "B"}, {"firstName": "C"}},
		"fareClass":  "economy",
	})

	mockService.On("Create", c.Request.Context(), mock.Anything).Return(nil, domain.ErrInsufficientSeats)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_create_InvalidBody(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	// missing passengers and fareClass
	c, w := testContext(t, "POST", "/api/bookings", gin.H{"flightId": "FL1"})

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestBookingHandler_get_StatusMapping(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService)

			c, w := testContext(t, "GET", "/api/bookings/b1", nil)
			c.Params = gin.Params{{Key: "id", Value: "b1"}}

			identity := domain.Identity{UserID: "u1", Role: domain.RoleUser}
			mockService.On("GetByID", c.Request.Context(), "b1", identity).Return(nil, tc.err)

			handler.get(c)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := testContext(t, "PATCH", "/api/bookings/b1/cancel", nil)
	c.Params = gin.Params{{Key: "id", Value: "b1"}}

	cancelled := &domain.Booking{
		ID:           "b1",
		UserID:       "u1",
		Status:       domain.BookingStatusCancelled,
		RefundStatus: domain.RefundStatusProcessing,
	}
	mockService.On("Cancel", c.Request.Context(), "b1", "u1").Return(cancelled, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Booking domain.Booking `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, domain.BookingStatusCancelled, response.Booking.Status)
	assert.Equal(t, domain.RefundStatusProcessing, response.Booking.RefundStatus)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_AlreadyCancelled(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := testContext(t, "PATCH", "/api/bookings/b1/cancel", nil)
	c.Params = gin.Params{{Key: "id", Value: "b1"}}

	mockService.On("Cancel", c.Request.Context(), "b1", "u1").Return(nil, domain.ErrAlreadyCancelled)

	handler.cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_reschedule(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := testContext(t, "PATCH", "/api/bookings/b1/reschedule", gin.H{"newFlightId": "FL2"})
	c.Params = gin.Params{{Key: "id", Value: "b1"}}

	updated := &domain.Booking{ID: "b1", UserID: "u1", FlightID: "FL2", Status: domain.BookingStatusConfirmed}
	mockService.On("Reschedule", c.Request.Context(), "b1", "u1", "FL2").Return(updated, nil)

	handler.reschedule(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Booking domain.Booking `json:"booking"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "FL2", response.Booking.FlightID)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := testContext(t, "GET", "/api/bookings", nil)

	bookings := []domain.Booking{{ID: "b1", UserID: "u1"}, {ID: "b2", UserID: "u1"}}
	mockService.On("ListForUser", c.Request.Context(), "u1").Return(bookings, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Count    int              `json:"count"`
		Bookings []domain.Booking `json:"bookings"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Len(t, response.Bookings, 2)
}
