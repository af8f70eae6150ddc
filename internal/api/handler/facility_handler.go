package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sharath12IND/ParkEase/internal/api/middleware"
	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
	"github.com/Sharath12IND/ParkEase/internal/service"
)

type FacilityHandler struct {
	facilityService *service.FacilityService
}

func NewFacilityHandler(fs *service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilityService: fs}
}

// GET /api/facilities
func (h *FacilityHandler) ListFacilities(c *gin.Context) {
	facilities, err := h.facilityService.GetAllFacilities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch facilities"})
		return
	}
	c.JSON(http.StatusOK, facilities)
}

// GET /api/facilities/:id
func (h *FacilityHandler) GetFacility(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	facility, err := h.facilityService.GetFacilityByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch facility"})
		return
	}
	c.JSON(http.StatusOK, facility)
}

// POST /api/facilities (vendor only)
func (h *FacilityHandler) CreateFacility(c *gin.Context) {
	var dto domain.ParkingFacilityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	facility, err := h.facilityService.CreateFacility(c.Request.Context(), middleware.CallerID(c), dto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create facility"})
		return
	}
	c.JSON(http.StatusCreated, facility)
}

// GET /api/facilities/:id/slots
func (h *FacilityHandler) ListSlots(c *gin.Context) {
	facilityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	slots, err := h.facilityService.GetSlotsByFacility(c.Request.Context(), facilityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch slots"})
		return
	}
	if slots == nil {
		slots = []domain.ParkingSlot{}
	}
	c.JSON(http.StatusOK, slots)
}

// POST /api/facilities/:id/slots (owning vendor only)
func (h *FacilityHandler) CreateSlot(c *gin.Context) {
	facilityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	var dto domain.ParkingSlotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	slot, err := h.facilityService.CreateSlot(c.Request.Context(), middleware.CallerID(c), facilityID, dto)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "facility not found"})
			return
		}
		if errors.Is(err, service.ErrFacilityNotOwned) {
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create slot"})
		return
	}
	c.JSON(http.StatusCreated, slot)
}
