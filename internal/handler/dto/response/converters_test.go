//go:build unit

package response_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/notification"
	"stayhub/internal/domain/property"
	"stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Every field must survive conversion; a mapping gap would hand clients a
// zero-valued body.

func TestFromBooking(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	b := &booking.Booking{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		UserID:     uuid.New(),
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-04",
		Guests:     2,
		TotalPrice: 300,
		Status:     booking.StatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now.Add(time.Hour),
	}

	resp := response.FromBooking(b)

	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, b.PropertyID, resp.PropertyID)
	assert.Equal(t, b.UserID, resp.UserID)
	assert.Equal(t, b.CheckIn, resp.CheckIn)
	assert.Equal(t, b.CheckOut, resp.CheckOut)
	assert.Equal(t, b.Guests, resp.Guests)
	assert.Equal(t, b.TotalPrice, resp.TotalPrice)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, b.CreatedAt, resp.CreatedAt)
	assert.Equal(t, b.UpdatedAt, resp.UpdatedAt)
}

func TestFromBookingPreview(t *testing.T) {
	p := &usecase.BookingPreview{
		Available:     true,
		PricePerNight: 100,
		Nights:        3,
		TotalPrice:    300,
	}

	resp := response.FromBookingPreview(p)

	assert.True(t, resp.Available)
	assert.Equal(t, 100.0, resp.PricePerNight)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 300.0, resp.TotalPrice)
}

func TestFromProperty(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &property.Property{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		Title:         "Seaside Cabin",
		Description:   "Two rooms by the shore",
		Location:      "Lisbon",
		PricePerNight: 85,
		Images:        []string{"a.jpg"},
		Amenities:     []string{"wifi"},
		PropertyType:  property.TypeCabin,
		Bedrooms:      2,
		Bathrooms:     1,
		MaxGuests:     3,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	resp := response.FromProperty(p)

	assert.Equal(t, p.ID, resp.ID)
	assert.Equal(t, p.HostID, resp.HostID)
	assert.Equal(t, p.Title, resp.Title)
	assert.Equal(t, p.Description, resp.Description)
	assert.Equal(t, p.Location, resp.Location)
	assert.Equal(t, p.PricePerNight, resp.PricePerNight)
	assert.Equal(t, p.Images, resp.Images)
	assert.Equal(t, p.Amenities, resp.Amenities)
	assert.Equal(t, string(property.TypeCabin), resp.PropertyType)
	assert.Equal(t, p.Bedrooms, resp.Bedrooms)
	assert.Equal(t, p.Bathrooms, resp.Bathrooms)
	assert.Equal(t, p.MaxGuests, resp.MaxGuests)
	assert.Equal(t, p.CreatedAt, resp.CreatedAt)
	assert.Equal(t, p.UpdatedAt, resp.UpdatedAt)
}

func TestFromNotification(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	n := &notification.Notification{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      booking.EventConfirmed,
		Title:     "New booking",
		Message:   "Your property was booked",
		Link:      "/bookings",
		Read:      true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := response.FromNotification(n)

	assert.Equal(t, n.ID, resp.ID)
	assert.Equal(t, n.Type, resp.Type)
	assert.Equal(t, n.Title, resp.Title)
	assert.Equal(t, n.Message, resp.Message)
	assert.Equal(t, n.Link, resp.Link)
	assert.True(t, resp.Read)
	assert.Equal(t, n.CreatedAt, resp.CreatedAt)
}
