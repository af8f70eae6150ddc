package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sharath12IND/ParkEase/internal/api/middleware"
	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/service"
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
}

func NewVehicleHandler(vs *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vs}
}

// GET /api/vehicles
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.GetVehiclesByUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch vehicles"})
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	c.JSON(http.StatusOK, vehicles)
}

// POST /api/vehicles
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var dto domain.VehicleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), middleware.CallerID(c), dto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create vehicle"})
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}
