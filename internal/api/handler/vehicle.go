package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/milewise/mile_go_server/internal/api/middleware"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/pkg/response"
	"github.com/milewise/mile_go_server/internal/service"
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
}

func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// Create registers a vehicle for the caller.
// POST /api/v1/vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.Create(userID, &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, vehicle)
}

// List returns the caller's vehicles, newest first.
// GET /api/v1/vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	vehicles, err := h.vehicleService.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, vehicles)
}

// Delete removes a vehicle owned by the caller.
// DELETE /api/v1/vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	err := h.vehicleService.Delete(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "vehicle deleted", nil)
}
