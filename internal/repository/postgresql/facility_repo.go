package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type pgFacilityRepository struct {
	db *sql.DB
}

func NewPgFacilityRepository(db *sql.DB) repository.FacilityRepository {
	return &pgFacilityRepository{db: db}
}

const facilityColumns = `id, name, address, city, state, zip_code, description, latitude, longitude,
	total_spaces, hourly_rate, daily_rate, has_ev_charging, has_covered, has_disabled,
	has_24_hour_access, has_security, image_urls, rating, review_count, owner_id`

func (r *pgFacilityRepository) Create(ctx context.Context, facility *domain.ParkingFacility) (*domain.ParkingFacility, error) {
	query := `INSERT INTO parking_facilities
	           (name, address, city, state, zip_code, description, latitude, longitude,
	            total_spaces, hourly_rate, daily_rate, has_ev_charging, has_covered, has_disabled,
	            has_24_hour_access, has_security, image_urls, rating, review_count, owner_id)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 0, 0, $18)
	           RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		facility.Name, facility.Address, facility.City, facility.State, facility.ZipCode,
		facility.Description, facility.Latitude, facility.Longitude,
		facility.TotalSpaces, facility.HourlyRate, facility.DailyRate,
		facility.HasEVCharging, facility.HasCovered, facility.HasDisabled,
		facility.Has24HourAccess, facility.HasSecurity, pq.Array(facility.ImageUrls), facility.OwnerID,
	).Scan(&facility.ID)
	if err != nil {
		return nil, fmt.Errorf("FacilityRepository.Create: %w", err)
	}
	facility.Rating = 0
	facility.ReviewCount = 0
	return facility, nil
}

func (r *pgFacilityRepository) FindByID(ctx context.Context, id int) (*domain.ParkingFacility, error) {
	query := `SELECT ` + facilityColumns + ` FROM parking_facilities WHERE id = $1`
	facility, err := scanFacility(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("FacilityRepository.FindByID: %w", err)
	}
	return facility, nil
}

func (r *pgFacilityRepository) FindAll(ctx context.Context) ([]domain.ParkingFacility, error) {
	query := `SELECT ` + facilityColumns + ` FROM parking_facilities ORDER BY id`
	return r.findMany(ctx, query)
}

func (r *pgFacilityRepository) FindByOwnerID(ctx context.Context, ownerID int) ([]domain.ParkingFacility, error) {
	query := `SELECT ` + facilityColumns + ` FROM parking_facilities WHERE owner_id = $1 ORDER BY id`
	return r.findMany(ctx, query, ownerID)
}

func (r *pgFacilityRepository) UpdateRating(ctx context.Context, id int, rating float64, reviewCount int) error {
	query := `UPDATE parking_facilities SET rating = $1, review_count = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, rating, reviewCount, id)
	if err != nil {
		return fmt.Errorf("FacilityRepository.UpdateRating: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("FacilityRepository.UpdateRating (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgFacilityRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.ParkingFacility, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("FacilityRepository.findMany: %w", err)
	}
	defer rows.Close()

	var facilities []domain.ParkingFacility
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("FacilityRepository.findMany (scanning row): %w", err)
		}
		facilities = append(facilities, *facility)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("FacilityRepository.findMany (rows error): %w", err)
	}
	return facilities, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFacility(row rowScanner) (*domain.ParkingFacility, error) {
	facility := &domain.ParkingFacility{}
	err := row.Scan(
		&facility.ID, &facility.Name, &facility.Address, &facility.City, &facility.State,
		&facility.ZipCode, &facility.Description, &facility.Latitude, &facility.Longitude,
		&facility.TotalSpaces, &facility.HourlyRate, &facility.DailyRate,
		&facility.HasEVCharging, &facility.HasCovered, &facility.HasDisabled,
		&facility.Has24HourAccess, &facility.HasSecurity, pq.Array(&facility.ImageUrls),
		&facility.Rating, &facility.ReviewCount, &facility.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return facility, nil
}
