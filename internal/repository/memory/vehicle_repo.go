package memory

import (
	"context"
	"sort"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type vehicleRepository struct {
	store *Store
}

func NewVehicleRepository(store *Store) repository.VehicleRepository {
	return &vehicleRepository{store: store}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *vehicle
	stored.ID = s.nextVehicleID()
	s.vehicles[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *vehicle
	return &out, nil
}

func (r *vehicleRepository) FindByUserID(ctx context.Context, userID int) ([]domain.Vehicle, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var vehicles []domain.Vehicle
	for _, vehicle := range s.vehicles {
		if vehicle.UserID == userID {
			vehicles = append(vehicles, *vehicle)
		}
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}

func (r *vehicleRepository) ClearDefaultForUser(ctx context.Context, userID int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, vehicle := range s.vehicles {
		if vehicle.UserID == userID && vehicle.IsDefault {
			vehicle.IsDefault = false
		}
	}
	return nil
}
