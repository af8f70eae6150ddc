// Package memory implements the repository interfaces over plain in-process
// maps with auto-incrementing integer IDs. It is the default backend: all
// state is lost on restart, which is acceptable for the marketplace demo and
// keeps the semantics of the data layer easy to pin down in tests.
package memory

import (
	"sync"

	"github.com/Sharath12IND/ParkEase/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	users      map[int]*domain.User
	vehicles   map[int]*domain.Vehicle
	facilities map[int]*domain.ParkingFacility
	slots      map[int]*domain.ParkingSlot
	bookings   map[int]*domain.Booking
	reviews    map[int]*domain.Review

	userID     int
	vehicleID  int
	facilityID int
	slotID     int
	bookingID  int
	reviewID   int
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int]*domain.User),
		vehicles:   make(map[int]*domain.Vehicle),
		facilities: make(map[int]*domain.ParkingFacility),
		slots:      make(map[int]*domain.ParkingSlot),
		bookings:   make(map[int]*domain.Booking),
		reviews:    make(map[int]*domain.Review),
	}
}

func (s *Store) nextUserID() int {
	s.userID++
	return s.userID
}

func (s *Store) nextVehicleID() int {
	s.vehicleID++
	return s.vehicleID
}

func (s *Store) nextFacilityID() int {
	s.facilityID++
	return s.facilityID
}

func (s *Store) nextSlotID() int {
	s.slotID++
	return s.slotID
}

func (s *Store) nextBookingID() int {
	s.bookingID++
	return s.bookingID
}

func (s *Store) nextReviewID() int {
	s.reviewID++
	return s.reviewID
}
