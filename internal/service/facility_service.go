package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gopkg.in/guregu/null.v4"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

var ErrFacilityNotOwned = errors.New("facility is not owned by this vendor")

type FacilityService struct {
	facilityRepo repository.FacilityRepository
	slotRepo     repository.SlotRepository
	reviewRepo   repository.ReviewRepository
}

func NewFacilityService(
	facilityRepo repository.FacilityRepository,
	slotRepo repository.SlotRepository,
	reviewRepo repository.ReviewRepository,
) *FacilityService {
	return &FacilityService{
		facilityRepo: facilityRepo,
		slotRepo:     slotRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *FacilityService) CreateFacility(ctx context.Context, ownerID int, dto domain.ParkingFacilityDTO) (*domain.ParkingFacility, error) {
	facility := &domain.ParkingFacility{
		Name:            dto.Name,
		Address:         dto.Address,
		City:            dto.City,
		State:           dto.State,
		ZipCode:         dto.ZipCode,
		Description:     null.NewString(dto.Description, dto.Description != ""),
		Latitude:        dto.Latitude,
		Longitude:       dto.Longitude,
		TotalSpaces:     dto.TotalSpaces,
		HourlyRate:      dto.HourlyRate,
		DailyRate:       null.FloatFromPtr(dto.DailyRate),
		HasEVCharging:   dto.HasEVCharging,
		HasCovered:      dto.HasCovered,
		HasDisabled:     dto.HasDisabled,
		Has24HourAccess: dto.Has24HourAccess,
		HasSecurity:     dto.HasSecurity,
		ImageUrls:       dto.ImageUrls,
		OwnerID:         ownerID,
	}
	created, err := s.facilityRepo.Create(ctx, facility)
	if err != nil {
		return nil, fmt.Errorf("creating facility: %w", err)
	}
	return created, nil
}

func (s *FacilityService) GetAllFacilities(ctx context.Context) ([]domain.ParkingFacility, error) {
	return s.facilityRepo.FindAll(ctx)
}

func (s *FacilityService) GetFacilityByID(ctx context.Context, id int) (*domain.ParkingFacility, error) {
	return s.facilityRepo.FindByID(ctx, id)
}

func (s *FacilityService) GetFacilitiesByOwner(ctx context.Context, ownerID int) ([]domain.ParkingFacility, error) {
	return s.facilityRepo.FindByOwnerID(ctx, ownerID)
}

// CreateSlot provisions a slot inside a facility. Only the owning vendor may
// add slots to a facility.
func (s *FacilityService) CreateSlot(ctx context.Context, ownerID int, facilityID int, dto domain.ParkingSlotDTO) (*domain.ParkingSlot, error) {
	facility, err := s.facilityRepo.FindByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if facility.OwnerID != ownerID {
		return nil, ErrFacilityNotOwned
	}

	slot := &domain.ParkingSlot{
		FacilityID: facilityID,
		SlotNumber: dto.SlotNumber,
		Level:      dto.Level,
		SlotType:   domain.SlotType(dto.SlotType),
		Status:     domain.SlotAvailable,
	}
	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("creating slot: %w", err)
	}
	return created, nil
}

func (s *FacilityService) GetSlotsByFacility(ctx context.Context, facilityID int) ([]domain.ParkingSlot, error) {
	return s.slotRepo.FindByFacilityID(ctx, facilityID)
}

// AddReview stores a review and recomputes the facility's aggregate rating.
func (s *FacilityService) AddReview(ctx context.Context, userID int, dto domain.ReviewDTO) (*domain.Review, error) {
	if _, err := s.facilityRepo.FindByID(ctx, dto.FacilityID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		UserID:     userID,
		FacilityID: dto.FacilityID,
		Rating:     dto.Rating,
		Comment:    null.NewString(dto.Comment, dto.Comment != ""),
	}
	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}

	if err := s.RecomputeFacilityRating(ctx, dto.FacilityID); err != nil {
		return nil, fmt.Errorf("recomputing facility rating: %w", err)
	}
	return created, nil
}

func (s *FacilityService) GetReviewsByFacility(ctx context.Context, facilityID int) ([]domain.Review, error) {
	return s.reviewRepo.FindByFacilityID(ctx, facilityID)
}

// RecomputeFacilityRating fully recomputes the facility's rating and review
// count from its reviews: the mean rating rounded to one decimal, or zero when
// there are no reviews. A full O(n) recompute keeps the stored aggregate an
// exact function of the reviews, insertion order included.
func (s *FacilityService) RecomputeFacilityRating(ctx context.Context, facilityID int) error {
	reviews, err := s.reviewRepo.FindByFacilityID(ctx, facilityID)
	if err != nil {
		return fmt.Errorf("listing reviews: %w", err)
	}

	if len(reviews) == 0 {
		return s.facilityRepo.UpdateRating(ctx, facilityID, 0, 0)
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	rating := math.Round(float64(total)/float64(len(reviews))*10) / 10
	return s.facilityRepo.UpdateRating(ctx, facilityID, rating, len(reviews))
}
