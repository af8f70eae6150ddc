package memory

import (
	"context"
	"sort"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type facilityRepository struct {
	store *Store
}

func NewFacilityRepository(store *Store) repository.FacilityRepository {
	return &facilityRepository{store: store}
}

func (r *facilityRepository) Create(ctx context.Context, facility *domain.ParkingFacility) (*domain.ParkingFacility, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *facility
	stored.ID = s.nextFacilityID()
	stored.Rating = 0
	stored.ReviewCount = 0
	s.facilities[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *facilityRepository) FindByID(ctx context.Context, id int) (*domain.ParkingFacility, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	facility, ok := s.facilities[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *facility
	return &out, nil
}

func (r *facilityRepository) FindAll(ctx context.Context) ([]domain.ParkingFacility, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	facilities := make([]domain.ParkingFacility, 0, len(s.facilities))
	for _, facility := range s.facilities {
		facilities = append(facilities, *facility)
	}
	sort.Slice(facilities, func(i, j int) bool { return facilities[i].ID < facilities[j].ID })
	return facilities, nil
}

func (r *facilityRepository) FindByOwnerID(ctx context.Context, ownerID int) ([]domain.ParkingFacility, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var facilities []domain.ParkingFacility
	for _, facility := range s.facilities {
		if facility.OwnerID == ownerID {
			facilities = append(facilities, *facility)
		}
	}
	sort.Slice(facilities, func(i, j int) bool { return facilities[i].ID < facilities[j].ID })
	return facilities, nil
}

func (r *facilityRepository) UpdateRating(ctx context.Context, id int, rating float64, reviewCount int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	facility, ok := s.facilities[id]
	if !ok {
		return repository.ErrNotFound
	}
	facility.Rating = rating
	facility.ReviewCount = reviewCount
	return nil
}
