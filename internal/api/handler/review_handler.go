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

type ReviewHandler struct {
	facilityService *service.FacilityService
}

func NewReviewHandler(fs *service.FacilityService) *ReviewHandler {
	return &ReviewHandler{facilityService: fs}
}

// GET /api/facilities/:id/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	facilityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid facility id"})
		return
	}

	reviews, err := h.facilityService.GetReviewsByFacility(c.Request.Context(), facilityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch reviews"})
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// POST /api/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var dto domain.ReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	review, err := h.facilityService.AddReview(c.Request.Context(), middleware.CallerID(c), dto)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}
