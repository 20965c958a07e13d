package request

import (
	"stayhub/internal/domain/property"
	"stayhub/internal/infra/store"
)

type CreatePropertyRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gte=0"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	PropertyType  string   `json:"propertyType" binding:"required"`
	Bedrooms      int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms     int      `json:"bathrooms" binding:"gte=0"`
	MaxGuests     int      `json:"maxGuests" binding:"gte=0"`
}

func (r CreatePropertyRequest) ToNewProperty() store.NewProperty {
	return store.NewProperty{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
		Images:        r.Images,
		Amenities:     r.Amenities,
		PropertyType:  property.Type(r.PropertyType),
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		MaxGuests:     r.MaxGuests,
	}
}

// UpdatePropertyRequest is a partial update; absent fields are left as they
// are.
type UpdatePropertyRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Location      *string   `json:"location"`
	PricePerNight *float64  `json:"pricePerNight"`
	Images        *[]string `json:"images"`
	Amenities     *[]string `json:"amenities"`
	PropertyType  *string   `json:"propertyType"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	MaxGuests     *int      `json:"maxGuests"`
}

func (r UpdatePropertyRequest) ToPatch() store.PropertyPatch {
	patch := store.PropertyPatch{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
		Images:        r.Images,
		Amenities:     r.Amenities,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		MaxGuests:     r.MaxGuests,
	}
	if r.PropertyType != nil {
		t := property.Type(*r.PropertyType)
		patch.PropertyType = &t
	}
	return patch
}
