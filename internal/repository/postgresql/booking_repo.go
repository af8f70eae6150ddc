package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type pgBookingRepository struct {
	db *sql.DB
}

func NewPgBookingRepository(db *sql.DB) repository.BookingRepository {
	return &pgBookingRepository{db: db}
}

const bookingColumns = `id, user_id, facility_id, slot_id, vehicle_id, start_time, end_time,
	total_amount, status, payment_status, created_at, qr_code`

func (r *pgBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query := `INSERT INTO bookings
	           (user_id, facility_id, slot_id, vehicle_id, start_time, end_time,
	            total_amount, status, payment_status, created_at, qr_code)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, $10)
	           RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		booking.UserID, booking.FacilityID, booking.SlotID, booking.VehicleID,
		booking.StartTime, booking.EndTime, booking.TotalAmount,
		booking.Status, booking.PaymentStatus, booking.QRCode,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.Create: %w", err)
	}
	return booking, nil
}

func (r *pgBookingRepository) FindByID(ctx context.Context, id int) (*domain.Booking, error) {
	booking := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&booking.ID, &booking.UserID, &booking.FacilityID, &booking.SlotID, &booking.VehicleID,
		&booking.StartTime, &booking.EndTime, &booking.TotalAmount,
		&booking.Status, &booking.PaymentStatus, &booking.CreatedAt, &booking.QRCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("BookingRepository.FindByID: %w", err)
	}
	return booking, nil
}

func (r *pgBookingRepository) FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY start_time DESC`
	return r.findMany(ctx, query, userID)
}

func (r *pgBookingRepository) FindByFacilityIDs(ctx context.Context, facilityIDs []int) ([]domain.Booking, error) {
	if len(facilityIDs) == 0 {
		return nil, nil
	}
	ids := make([]int64, len(facilityIDs))
	for i, id := range facilityIDs {
		ids[i] = int64(id)
	}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE facility_id = ANY($1) ORDER BY start_time DESC`
	return r.findMany(ctx, query, pq.Array(ids))
}

func (r *pgBookingRepository) UpdateStatus(ctx context.Context, id int, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	query := `UPDATE bookings SET status = $1, payment_status = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, paymentStatus, id)
	if err != nil {
		return fmt.Errorf("BookingRepository.UpdateStatus: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("BookingRepository.UpdateStatus (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgBookingRepository) HasOverlapping(ctx context.Context, slotID int, start, end time.Time) (bool, error) {
	// Half-open [start, end): touching windows do not conflict.
	query := `SELECT EXISTS (
	             SELECT 1 FROM bookings
	             WHERE slot_id = $1 AND status <> $2 AND start_time < $4 AND end_time > $3
	           )`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, slotID, domain.BookingCanceled, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("BookingRepository.HasOverlapping: %w", err)
	}
	return exists, nil
}

func (r *pgBookingRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("BookingRepository.findMany: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID, &booking.UserID, &booking.FacilityID, &booking.SlotID, &booking.VehicleID,
			&booking.StartTime, &booking.EndTime, &booking.TotalAmount,
			&booking.Status, &booking.PaymentStatus, &booking.CreatedAt, &booking.QRCode,
		); err != nil {
			return nil, fmt.Errorf("BookingRepository.findMany (scanning row): %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("BookingRepository.findMany (rows error): %w", err)
	}
	return bookings, nil
}
