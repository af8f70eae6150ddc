package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Sharath12IND/ParkEase/internal/domain"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateEntry = errors.New("record already exists")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	FindByID(ctx context.Context, id int) (*domain.Vehicle, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Vehicle, error)
	ClearDefaultForUser(ctx context.Context, userID int) error
}

type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.ParkingFacility) (*domain.ParkingFacility, error)
	FindByID(ctx context.Context, id int) (*domain.ParkingFacility, error)
	FindAll(ctx context.Context) ([]domain.ParkingFacility, error)
	FindByOwnerID(ctx context.Context, ownerID int) ([]domain.ParkingFacility, error)
	UpdateRating(ctx context.Context, id int, rating float64, reviewCount int) error
}

type SlotRepository interface {
	Create(ctx context.Context, slot *domain.ParkingSlot) (*domain.ParkingSlot, error)
	FindByID(ctx context.Context, id int) (*domain.ParkingSlot, error)
	FindByFacilityID(ctx context.Context, facilityID int) ([]domain.ParkingSlot, error)
	UpdateStatus(ctx context.Context, id int, status domain.SlotStatus) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	// FindByUserID returns the user's bookings sorted by start time, newest first.
	FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error)
	// FindByFacilityIDs returns bookings across a set of facilities, newest start first.
	FindByFacilityIDs(ctx context.Context, facilityIDs []int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error
	// HasOverlapping reports whether any non-canceled booking for the slot
	// intersects the half-open window [start, end).
	HasOverlapping(ctx context.Context, slotID int, start, end time.Time) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	// FindByFacilityID returns reviews sorted by creation time, newest first.
	FindByFacilityID(ctx context.Context, facilityID int) ([]domain.Review, error)
}
