package memory

import (
	"context"
	"sort"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type slotRepository struct {
	store *Store
}

func NewSlotRepository(store *Store) repository.SlotRepository {
	return &slotRepository{store: store}
}

func (r *slotRepository) Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *slot
	stored.ID = s.nextSlotID()
	if stored.Level == 0 {
		stored.Level = 1
	}
	if stored.SlotType == "" {
		stored.SlotType = domain.SlotTypeStandard
	}
	if stored.Status == "" {
		stored.Status = domain.SlotAvailable
	}
	s.slots[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *slotRepository) FindByID(ctx context.Context, id int) (*domain.ParkingSlot, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *slot
	return &out, nil
}

func (r *slotRepository) FindByFacilityID(ctx context.Context, facilityID int) ([]domain.ParkingSlot, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var slots []domain.ParkingSlot
	for _, slot := range s.slots {
		if slot.FacilityID == facilityID {
			slots = append(slots, *slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })
	return slots, nil
}

func (r *slotRepository) UpdateStatus(ctx context.Context, id int, status domain.SlotStatus) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return repository.ErrNotFound
	}
	slot.Status = status
	return nil
}
