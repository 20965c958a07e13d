// Package property models the rental listings bookings are made against.
package property

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyLocation    = errors.New("location is required")
	ErrNegativePrice    = errors.New("pricePerNight cannot be negative")
	ErrInvalidType      = errors.New("invalid property type")
)

type Type string

const (
	TypeApartment Type = "apartment"
	TypeHouse     Type = "house"
	TypeCabin     Type = "cabin"
	TypeHotel     Type = "hotel"
	TypeOther     Type = "other"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypeCabin, TypeHotel, TypeOther:
		return true
	default:
		return false
	}
}

type Property struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Title         string
	Description   string
	Location      string
	PricePerNight float64
	Images        []string
	Amenities     []string
	PropertyType  Type
	Bedrooms      int
	Bathrooms     int
	// MaxGuests is the declared capacity; zero means the property declares
	// no capacity and guest counts are not bounded.
	MaxGuests int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapacity reports whether the property declares a guest capacity.
func (p *Property) HasCapacity() bool {
	return p.MaxGuests > 0
}

// Validate checks the fields a host controls. Called on create and update.
func (p *Property) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(p.Location) == "" {
		return ErrEmptyLocation
	}
	if p.PricePerNight < 0 {
		return ErrNegativePrice
	}
	if p.PropertyType != "" && !p.PropertyType.IsValid() {
		return ErrInvalidType
	}
	return nil
}
