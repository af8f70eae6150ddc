package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type pgSlotRepository struct {
	db *sql.DB
}

func NewPgSlotRepository(db *sql.DB) repository.SlotRepository {
	return &pgSlotRepository{db: db}
}

func (r *pgSlotRepository) Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error) {
	if slot.Level == 0 {
		slot.Level = 1
	}
	if slot.SlotType == "" {
		slot.SlotType = domain.SlotTypeStandard
	}
	if slot.Status == "" {
		slot.Status = domain.SlotAvailable
	}
	query := `INSERT INTO parking_slots (facility_id, slot_number, level, slot_type, status)
	           VALUES ($1, $2, $3, $4, $5)
	           RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		slot.FacilityID, slot.SlotNumber, slot.Level, slot.SlotType, slot.Status,
	).Scan(&slot.ID)
	if err != nil {
		return nil, fmt.Errorf("SlotRepository.Create: %w", err)
	}
	return slot, nil
}

func (r *pgSlotRepository) FindByID(ctx context.Context, id int) (*domain.ParkingSlot, error) {
	slot := &domain.ParkingSlot{}
	query := `SELECT id, facility_id, slot_number, level, slot_type, status
	           FROM parking_slots WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&slot.ID, &slot.FacilityID, &slot.SlotNumber, &slot.Level, &slot.SlotType, &slot.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("SlotRepository.FindByID: %w", err)
	}
	return slot, nil
}

func (r *pgSlotRepository) FindByFacilityID(ctx context.Context, facilityID int) ([]domain.ParkingSlot, error) {
	query := `SELECT id, facility_id, slot_number, level, slot_type, status
	           FROM parking_slots WHERE facility_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("SlotRepository.FindByFacilityID: %w", err)
	}
	defer rows.Close()

	var slots []domain.ParkingSlot
	for rows.Next() {
		var slot domain.ParkingSlot
		if err := rows.Scan(
			&slot.ID, &slot.FacilityID, &slot.SlotNumber, &slot.Level, &slot.SlotType, &slot.Status,
		); err != nil {
			return nil, fmt.Errorf("SlotRepository.FindByFacilityID (scanning row): %w", err)
		}
		slots = append(slots, slot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("SlotRepository.FindByFacilityID (rows error): %w", err)
	}
	return slots, nil
}

func (r *pgSlotRepository) UpdateStatus(ctx context.Context, id int, status domain.SlotStatus) error {
	query := `UPDATE parking_slots SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("SlotRepository.UpdateStatus: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("SlotRepository.UpdateStatus (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
