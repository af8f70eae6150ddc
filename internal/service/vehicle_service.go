package service

import (
	"context"
	"fmt"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type VehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// CreateVehicle registers a vehicle for the user. When the new vehicle is
// marked default, any previous default for that user is unset first, so at
// most one vehicle per user ever has is_default = true.
func (s *VehicleService) CreateVehicle(ctx context.Context, userID int, dto domain.VehicleDTO) (*domain.Vehicle, error) {
	if dto.IsDefault {
		if err := s.vehicleRepo.ClearDefaultForUser(ctx, userID); err != nil {
			return nil, fmt.Errorf("clearing previous default vehicle: %w", err)
		}
	}

	vehicle := &domain.Vehicle{
		UserID:       userID,
		LicensePlate: dto.LicensePlate,
		Make:         dto.Make,
		Model:        dto.Model,
		VehicleType:  dto.VehicleType,
		IsDefault:    dto.IsDefault,
	}
	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		return nil, fmt.Errorf("creating vehicle: %w", err)
	}
	return created, nil
}

func (s *VehicleService) GetVehiclesByUser(ctx context.Context, userID int) ([]domain.Vehicle, error) {
	return s.vehicleRepo.FindByUserID(ctx, userID)
}
