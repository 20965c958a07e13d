package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	CheckIn    string    `json:"checkIn" binding:"required"`
	CheckOut   string    `json:"checkOut" binding:"required"`
	Guests     int       `json:"guests" binding:"required"`
}

// PreviewBookingRequest quotes a stay without persisting anything. Guests
// defaults to one traveller when omitted.
type PreviewBookingRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	CheckIn    string    `json:"checkIn" binding:"required"`
	CheckOut   string    `json:"checkOut" binding:"required"`
	Guests     int       `json:"guests"`
}

// GuestsOrDefault substitutes one traveller only for an omitted field.
// Negative counts pass through untouched so validation can reject them.
func (r PreviewBookingRequest) GuestsOrDefault() int {
	if r.Guests == 0 {
		return 1
	}
	return r.Guests
}
