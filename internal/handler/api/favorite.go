package api

import (
	"net/http"

	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteUseCase usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

// @Summary List favorites
// @Description List the authenticated user's favorite properties
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FavoriteResponse
// @Failure 401 {object} httperr.Response
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}

	list, err := h.favoriteUseCase.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFavorites(list))
}

// @Summary Check favorite
// @Description Report whether a property is in the authenticated user's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Success 200 {object} resdto.IsFavoriteResponse
// @Failure 400 {object} httperr.Response
// @Router /favorites/{propertyId} [get]
func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}
	propertyID, ok := parseUUIDParam(c, "propertyId")
	if !ok {
		return
	}

	isFav, err := h.favoriteUseCase.IsFavorite(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.IsFavoriteResponse{PropertyID: propertyID, Favorite: isFav})
}

// @Summary Add favorite
// @Description Add a property to the authenticated user's favorites; adding twice is a no-op
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Success 201 {object} resdto.FavoriteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /favorites/{propertyId} [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}
	propertyID, ok := parseUUIDParam(c, "propertyId")
	if !ok {
		return
	}

	added, err := h.favoriteUseCase.Add(c.Request.Context(), userID, propertyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFavorite(added))
}

// @Summary Remove favorite
// @Description Remove a property from the authenticated user's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /favorites/{propertyId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}
	propertyID, ok := parseUUIDParam(c, "propertyId")
	if !ok {
		return
	}

	if err := h.favoriteUseCase.Remove(c.Request.Context(), userID, propertyID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
