package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sharath12IND/ParkEase/internal/api/middleware"
	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/service"
)

type VendorHandler struct {
	facilityService *service.FacilityService
	bookingService  *service.BookingService
}

func NewVendorHandler(fs *service.FacilityService, bs *service.BookingService) *VendorHandler {
	return &VendorHandler{facilityService: fs, bookingService: bs}
}

// GET /api/vendor/facilities
func (h *VendorHandler) ListFacilities(c *gin.Context) {
	facilities, err := h.facilityService.GetFacilitiesByOwner(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch vendor facilities"})
		return
	}
	if facilities == nil {
		facilities = []domain.ParkingFacility{}
	}
	c.JSON(http.StatusOK, facilities)
}

// GET /api/vendor/bookings
func (h *VendorHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetBookingsForVendor(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch vendor bookings"})
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
