package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/milewise/mile_go_server/internal/api/middleware"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/pkg/response"
	"github.com/milewise/mile_go_server/internal/service"
)

type TripHandler struct {
	tripService *service.TripService
}

func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{
		tripService: tripService,
	}
}

// Create logs a trip.
// POST /api/v1/trips
func (h *TripHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	trip, err := h.tripService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAutoTripLimit) {
			response.QuotaError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, trip)
}

// List returns the caller's most recent trips.
// GET /api/v1/trips
func (h *TripHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	trips, err := h.tripService.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, trips)
}

// Update applies a partial update to a trip owned by the caller.
// PUT /api/v1/trips/:id
func (h *TripHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	trip, err := h.tripService.Update(userID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrTripNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, trip)
}

// Delete removes a trip owned by the caller.
// DELETE /api/v1/trips/:id
func (h *TripHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	err := h.tripService.Delete(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "trip deleted", nil)
}
