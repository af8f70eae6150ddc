package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type pgVehicleRepository struct {
	db *sql.DB
}

func NewPgVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &pgVehicleRepository{db: db}
}

func (r *pgVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `INSERT INTO vehicles (user_id, license_plate, make, model, vehicle_type, is_default)
	           VALUES ($1, $2, $3, $4, $5, $6)
	           RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		vehicle.UserID, vehicle.LicensePlate, vehicle.Make, vehicle.Model, vehicle.VehicleType, vehicle.IsDefault,
	).Scan(&vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("VehicleRepository.Create: %w", err)
	}
	return vehicle, nil
}

func (r *pgVehicleRepository) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{}
	query := `SELECT id, user_id, license_plate, make, model, vehicle_type, is_default
	           FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID, &vehicle.UserID, &vehicle.LicensePlate,
		&vehicle.Make, &vehicle.Model, &vehicle.VehicleType, &vehicle.IsDefault,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("VehicleRepository.FindByID: %w", err)
	}
	return vehicle, nil
}

func (r *pgVehicleRepository) FindByUserID(ctx context.Context, userID int) ([]domain.Vehicle, error) {
	query := `SELECT id, user_id, license_plate, make, model, vehicle_type, is_default
	           FROM vehicles WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("VehicleRepository.FindByUserID: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := rows.Scan(
			&vehicle.ID, &vehicle.UserID, &vehicle.LicensePlate,
			&vehicle.Make, &vehicle.Model, &vehicle.VehicleType, &vehicle.IsDefault,
		); err != nil {
			return nil, fmt.Errorf("VehicleRepository.FindByUserID (scanning row): %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("VehicleRepository.FindByUserID (rows error): %w", err)
	}
	return vehicles, nil
}

func (r *pgVehicleRepository) ClearDefaultForUser(ctx context.Context, userID int) error {
	query := `UPDATE vehicles SET is_default = FALSE WHERE user_id = $1 AND is_default = TRUE`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("VehicleRepository.ClearDefaultForUser: %w", err)
	}
	return nil
}
