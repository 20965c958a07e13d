package response

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	UserID     uuid.UUID `json:"userId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingPreviewResponse struct {
	Available     bool    `json:"available"`
	PricePerNight float64 `json:"pricePerNight"`
	Nights        int     `json:"nights"`
	TotalPrice    float64 `json:"totalPrice"`
}

type AvailabilityResponse struct {
	PropertyID uuid.UUID `json:"propertyId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Available  bool      `json:"available"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, b); err != nil {
		// Never answer with a zero-valued body; map by hand instead.
		resp = BookingResponse{
			ID:         b.ID,
			PropertyID: b.PropertyID,
			UserID:     b.UserID,
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			Guests:     b.Guests,
			TotalPrice: b.TotalPrice,
			CreatedAt:  b.CreatedAt,
			UpdatedAt:  b.UpdatedAt,
		}
	}
	resp.Status = string(b.Status)
	return &resp
}

func FromBookings(list []*booking.Booking) []*BookingResponse {
	result := make([]*BookingResponse, len(list))
	for i, b := range list {
		result[i] = FromBooking(b)
	}
	return result
}

func FromBookingPreview(p *usecase.BookingPreview) *BookingPreviewResponse {
	var resp BookingPreviewResponse
	if err := copier.Copy(&resp, p); err != nil {
		resp = BookingPreviewResponse{
			Available:     p.Available,
			PricePerNight: p.PricePerNight,
			Nights:        p.Nights,
			TotalPrice:    p.TotalPrice,
		}
	}
	return &resp
}
