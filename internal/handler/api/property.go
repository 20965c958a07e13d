package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyUseCase usecase.PropertyUseCase
	bookingUseCase  usecase.BookingUseCase
}

func NewPropertyHandler(propertyUseCase usecase.PropertyUseCase, bookingUseCase usecase.BookingUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
		bookingUseCase:  bookingUseCase,
	}
}

// @Summary List properties
// @Description List all listed properties
// @Tags properties
// @Produce json
// @Success 200 {array} resdto.PropertyResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	list, err := h.propertyUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProperties(list))
}

// @Summary Get property
// @Description Get a property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	found, err := h.propertyUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProperty(found))
}

// @Summary List my properties
// @Description List the authenticated host's listings
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PropertyResponse
// @Failure 401 {object} httperr.Response
// @Router /properties/mine [get]
func (h *PropertyHandler) ListMyProperties(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}

	list, err := h.propertyUseCase.ListByHost(c.Request.Context(), hostID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProperties(list))
}

// @Summary Create property
// @Description Create a new listing owned by the authenticated user
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Property request"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}

	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, codeValidation, "Invalid request format")
		return
	}

	created, err := h.propertyUseCase.Create(c.Request.Context(), hostID, req.ToNewProperty())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProperty(created))
}

// @Summary Update property
// @Description Patch a listing; host and admins only
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Patch request"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, codeValidation, "Invalid request format")
		return
	}

	updated, err := h.propertyUseCase.Update(c.Request.Context(), callerID, id, req.ToPatch(), middleware.IsPrivileged(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProperty(updated))
}

// @Summary Delete property
// @Description Remove a listing and cascade over its bookings and favorites
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.propertyUseCase.Delete(c.Request.Context(), callerID, id, middleware.IsPrivileged(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Check availability
// @Description Check whether a property is free for a date range
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /properties/{id}/availability [get]
func (h *PropertyHandler) CheckAvailability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")

	available, err := h.bookingUseCase.CheckAvailability(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		PropertyID: id,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Available:  available,
	})
}

// @Summary List property bookings
// @Description List bookings for a property; host and admins only
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/bookings [get]
func (h *PropertyHandler) ListPropertyBookings(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		respondMissingIdentity(c)
		return
	}
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.bookingUseCase.ListForProperty(c.Request.Context(), callerID, id, middleware.IsPrivileged(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(list))
}
