package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

type bookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) repository.BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *booking
	stored.ID = s.nextBookingID()
	stored.CreatedAt = time.Now().UTC()
	s.bookings[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int) (*domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *booking
	return &out, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []domain.Booking
	for _, booking := range s.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, *booking)
		}
	}
	sortByStartTimeDesc(bookings)
	return bookings, nil
}

func (r *bookingRepository) FindByFacilityIDs(ctx context.Context, facilityIDs []int) ([]domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int]struct{}, len(facilityIDs))
	for _, id := range facilityIDs {
		wanted[id] = struct{}{}
	}

	var bookings []domain.Booking
	for _, booking := range s.bookings {
		if _, ok := wanted[booking.FacilityID]; ok {
			bookings = append(bookings, *booking)
		}
	}
	sortByStartTimeDesc(bookings)
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = status
	booking.PaymentStatus = paymentStatus
	return nil
}

func (r *bookingRepository) HasOverlapping(ctx context.Context, slotID int, start, end time.Time) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, booking := range s.bookings {
		if booking.SlotID != slotID || booking.Status == domain.BookingCanceled {
			continue
		}
		// Half-open interval intersection: [start, end) conflicts with
		// [booking.StartTime, booking.EndTime) iff each starts before the
		// other ends. Touching windows do not conflict.
		if start.Before(booking.EndTime) && end.After(booking.StartTime) {
			return true, nil
		}
	}
	return false, nil
}

func sortByStartTimeDesc(bookings []domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].StartTime.After(bookings[j].StartTime)
	})
}
