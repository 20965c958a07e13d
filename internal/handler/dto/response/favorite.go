package response

import (
	"time"

	"stayhub/internal/domain/favorite"

	"github.com/google/uuid"
)

type FavoriteResponse struct {
	PropertyID uuid.UUID `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type IsFavoriteResponse struct {
	PropertyID uuid.UUID `json:"propertyId"`
	Favorite   bool      `json:"favorite"`
}

func FromFavorite(f *favorite.Favorite) *FavoriteResponse {
	return &FavoriteResponse{
		PropertyID: f.PropertyID,
		CreatedAt:  f.CreatedAt,
	}
}

func FromFavorites(list []*favorite.Favorite) []*FavoriteResponse {
	result := make([]*FavoriteResponse, len(list))
	for i, f := range list {
		result[i] = FromFavorite(f)
	}
	return result
}
