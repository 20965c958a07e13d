package api

import (
	"errors"
	"net/http"

	"stayhub/internal/handler/httperr"
	"stayhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Stable error codes exposed to clients. Capacity violations get their own
// code so a client can tell them apart from other 400s.
const (
	codeValidation       = "VALIDATION_ERROR"
	codeCapacityExceeded = "CAPACITY_EXCEEDED"
	codeNotAvailable     = "NOT_AVAILABLE"
	codeNotFound         = "NOT_FOUND"
	codeForbidden        = "FORBIDDEN"
	codeConflict         = "CONFLICT"
	codeUnauthorized     = "UNAUTHORIZED"
	codeInternal         = "INTERNAL_ERROR"
)

type errorMapping struct {
	sentinel error
	status   int
	code     string
	message  string
}

var errorMappings = []errorMapping{
	{usecase.ErrPropertyRequired, http.StatusBadRequest, codeValidation, "Property ID is required"},
	{usecase.ErrInvalidDates, http.StatusBadRequest, codeValidation, "Invalid check-in or check-out date"},
	{usecase.ErrInvalidGuests, http.StatusBadRequest, codeValidation, "Invalid number of guests"},
	{usecase.ErrGuestsExceedCapacity, http.StatusBadRequest, codeCapacityExceeded, "Number of guests exceeds property capacity"},
	{usecase.ErrInvalidProperty, http.StatusBadRequest, codeValidation, "Invalid property fields"},
	{usecase.ErrInvalidNotification, http.StatusBadRequest, codeValidation, "Invalid notification fields"},
	{usecase.ErrInvalidUser, http.StatusBadRequest, codeValidation, "Invalid registration fields"},
	{usecase.ErrHostRequired, http.StatusBadRequest, codeValidation, "Host is required"},
	{usecase.ErrInvalidCredentials, http.StatusUnauthorized, codeUnauthorized, "Invalid email or password"},
	{usecase.ErrNotBookingOwner, http.StatusForbidden, codeForbidden, "Not allowed to access this booking"},
	{usecase.ErrNotPropertyHost, http.StatusForbidden, codeForbidden, "Not allowed to access this property's bookings"},
	{usecase.ErrNotPropertyOwner, http.StatusForbidden, codeForbidden, "Not allowed to modify this property"},
	{usecase.ErrPropertyNotFound, http.StatusNotFound, codeNotFound, "Property not found"},
	{usecase.ErrBookingNotFound, http.StatusNotFound, codeNotFound, "Booking not found"},
	{usecase.ErrNotificationNotFound, http.StatusNotFound, codeNotFound, "Notification not found"},
	{usecase.ErrFavoriteNotFound, http.StatusNotFound, codeNotFound, "Favorite not found"},
	{usecase.ErrUserNotFound, http.StatusNotFound, codeNotFound, "User not found"},
	{usecase.ErrNotAvailable, http.StatusConflict, codeNotAvailable, "Property is not available for the selected dates"},
	{usecase.ErrEmailTaken, http.StatusConflict, codeConflict, "Email is already registered"},
}

// respondError translates usecase sentinels into the public error envelope.
// Anything unmapped is a 500 with the cause preserved for the logger.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			httperr.AbortWithError(c, m.status, err, m.code, m.message)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, codeInternal, "Internal server error")
}

func respondMissingIdentity(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusInternalServerError,
		errors.New("authenticated user missing from context"), codeInternal, "Internal server error")
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, codeValidation, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
