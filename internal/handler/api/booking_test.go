//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase"
	"stayhub/tests/common/httptest"
	usecasemock "stayhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
	userID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)
	s.userID = uuid.New()

	// Stands in for RequireAuth: every request runs as s.userID.
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}

	s.router.POST("/bookings", authed, s.handler.CreateBooking)
	s.router.POST("/bookings/preview", authed, s.handler.PreviewBooking)
	s.router.GET("/bookings", authed, s.handler.ListMyBookings)
	s.router.GET("/bookings/:id", authed, s.handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", authed, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) sampleBooking(propertyID uuid.UUID) *booking.Booking {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	return &booking.Booking{
		ID:         uuid.New(),
		PropertyID: propertyID,
		UserID:     s.userID,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-04",
		Guests:     2,
		TotalPrice: 300,
		Status:     booking.StatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	propertyID := uuid.New()
	reqBody := map[string]any{
		"propertyId": propertyID,
		"checkIn":    "2025-06-01",
		"checkOut":   "2025-06-04",
		"guests":     2,
	}

	s.Run("success: returns 201 Created with the booking", func() {
		created := s.sampleBooking(propertyID)
		s.mockUseCase.EXPECT().
			CreateBooking(gomock.Any(), s.userID, propertyID, "2025-06-01", "2025-06-04", 2).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID, response.ID)
		s.Equal(300.0, response.TotalPrice)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 409 Conflict when the dates are taken", func() {
		s.mockUseCase.EXPECT().
			CreateBooking(gomock.Any(), s.userID, propertyID, "2025-06-01", "2025-06-04", 2).
			Return(nil, usecase.ErrNotAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "NOT_AVAILABLE", "not available")
	})

	s.Run("error: 400 with capacity code when guests exceed capacity", func() {
		s.mockUseCase.EXPECT().
			CreateBooking(gomock.Any(), s.userID, propertyID, "2025-06-01", "2025-06-04", 2).
			Return(nil, usecase.ErrGuestsExceedCapacity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "CAPACITY_EXCEEDED", "exceeds property capacity")
	})

	s.Run("error: 404 when the property does not exist", func() {
		s.mockUseCase.EXPECT().
			CreateBooking(gomock.Any(), s.userID, propertyID, "2025-06-01", "2025-06-04", 2).
			Return(nil, usecase.ErrPropertyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND", "Property not found")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"propertyId": "not-a-uuid"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestPreviewBooking() {
	url := "/bookings/preview"
	propertyID := uuid.New()

	s.Run("success: returns the quote", func() {
		s.mockUseCase.EXPECT().
			Preview(gomock.Any(), propertyID, "2025-06-01", "2025-06-04", 2).
			Return(&usecase.BookingPreview{
				Available:     true,
				PricePerNight: 100,
				Nights:        3,
				TotalPrice:    300,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"propertyId": propertyID,
			"checkIn":    "2025-06-01",
			"checkOut":   "2025-06-04",
			"guests":     2,
		}, "")

		var response resdto.BookingPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Equal(100.0, response.PricePerNight)
		s.Equal(3, response.Nights)
		s.Equal(300.0, response.TotalPrice)
	})

	s.Run("defaults guests to one when omitted", func() {
		s.mockUseCase.EXPECT().
			Preview(gomock.Any(), propertyID, "2025-06-01", "2025-06-04", 1).
			Return(&usecase.BookingPreview{Available: true, PricePerNight: 100, Nights: 3, TotalPrice: 300}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"propertyId": propertyID,
			"checkIn":    "2025-06-01",
			"checkOut":   "2025-06-04",
		}, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when guests is negative", func() {
		s.mockUseCase.EXPECT().
			Preview(gomock.Any(), propertyID, "2025-06-01", "2025-06-04", -3).
			Return(nil, usecase.ErrInvalidGuests).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"propertyId": propertyID,
			"checkIn":    "2025-06-01",
			"checkOut":   "2025-06-04",
			"guests":     -3,
		}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR", "")
	})

	s.Run("error: 400 on invalid dates", func() {
		s.mockUseCase.EXPECT().
			Preview(gomock.Any(), propertyID, "junk", "2025-06-04", 2).
			Return(nil, usecase.ErrInvalidDates).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"propertyId": propertyID,
			"checkIn":    "junk",
			"checkOut":   "2025-06-04",
			"guests":     2,
		}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR", "")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	propertyID := uuid.New()

	s.Run("success: returns the booking", func() {
		b := s.sampleBooking(propertyID)
		s.mockUseCase.EXPECT().
			GetBooking(gomock.Any(), s.userID, b.ID, false).
			Return(b, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID format")
	})

	s.Run("error: 403 when not the owner", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			GetBooking(gomock.Any(), s.userID, id, false).
			Return(nil, usecase.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "FORBIDDEN", "")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	propertyID := uuid.New()

	s.Run("success: returns the cancelled booking", func() {
		b := s.sampleBooking(propertyID)
		b.Status = booking.StatusCancelled
		s.mockUseCase.EXPECT().
			CancelBooking(gomock.Any(), s.userID, b.ID, false).
			Return(b, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/cancel", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 404 when the booking does not exist", func() {
		id := uuid.New()
		s.mockUseCase.EXPECT().
			CancelBooking(gomock.Any(), s.userID, id, false).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	propertyID := uuid.New()

	s.Run("success: returns the user's bookings", func() {
		list := []*booking.Booking{s.sampleBooking(propertyID), s.sampleBooking(propertyID)}
		s.mockUseCase.EXPECT().
			ListForUser(gomock.Any(), s.userID).
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}
