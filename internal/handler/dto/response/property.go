package response

import (
	"time"

	"stayhub/internal/domain/property"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"hostId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"pricePerNight"`
	Images        []string  `json:"images"`
	Amenities     []string  `json:"amenities"`
	PropertyType  string    `json:"propertyType"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	MaxGuests     int       `json:"maxGuests"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromProperty(p *property.Property) *PropertyResponse {
	var resp PropertyResponse
	if err := copier.Copy(&resp, p); err != nil {
		resp = PropertyResponse{
			ID:            p.ID,
			HostID:        p.HostID,
			Title:         p.Title,
			Description:   p.Description,
			Location:      p.Location,
			PricePerNight: p.PricePerNight,
			Images:        p.Images,
			Amenities:     p.Amenities,
			Bedrooms:      p.Bedrooms,
			Bathrooms:     p.Bathrooms,
			MaxGuests:     p.MaxGuests,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		}
	}
	resp.PropertyType = string(p.PropertyType)
	return &resp
}

func FromProperties(list []*property.Property) []*PropertyResponse {
	result := make([]*PropertyResponse, len(list))
	for i, p := range list {
		result[i] = FromProperty(p)
	}
	return result
}
