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

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bs *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// GET /api/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetBookingsByUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// POST /api/bookings
//
// Availability is a hard precondition here: an unavailable or conflicting slot
// is a 409, and failures are never masked by a synthetic success payload.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var dto domain.CreateBookingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), middleware.CallerID(c), dto)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTimeWindow):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrVehicleNotOwned):
			c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "vehicle not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create booking"})
		}
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// PATCH /api/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid booking id"})
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), bookingID, middleware.CallerID(c))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		case errors.Is(err, service.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": "not authorized to cancel this booking"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to cancel booking"})
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}
