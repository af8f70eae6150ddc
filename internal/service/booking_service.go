package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

var ErrSlotUnavailable = errors.New("slot is not available for the requested time window")
var ErrInvalidTimeWindow = errors.New("end time must be after start time")
var ErrNotBookingOwner = errors.New("booking belongs to another user")
var ErrVehicleNotOwned = errors.New("vehicle belongs to another user")

// SlotEventPublisher receives slot status transitions. The websocket hub
// implements it; tests pass nil.
type SlotEventPublisher interface {
	PublishSlotStatus(event domain.SlotStatusEvent)
}

type BookingService struct {
	bookingRepo  repository.BookingRepository
	slotRepo     repository.SlotRepository
	facilityRepo repository.FacilityRepository
	vehicleRepo  repository.VehicleRepository
	publisher    SlotEventPublisher

	// slotLocks serializes check-availability + create + slot update per
	// slot. Without it, two concurrent requests for the same slot can both
	// pass the availability check and double-book.
	mu        sync.Mutex
	slotLocks map[int]*sync.Mutex
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	slotRepo repository.SlotRepository,
	facilityRepo repository.FacilityRepository,
	vehicleRepo repository.VehicleRepository,
	publisher SlotEventPublisher,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		facilityRepo: facilityRepo,
		vehicleRepo:  vehicleRepo,
		publisher:    publisher,
		slotLocks:    make(map[int]*sync.Mutex),
	}
}

func (s *BookingService) lockSlot(slotID int) *sync.Mutex {
	s.mu.Lock()
	lock, ok := s.slotLocks[slotID]
	if !ok {
		lock = &sync.Mutex{}
		s.slotLocks[slotID] = lock
	}
	s.mu.Unlock()
	lock.Lock()
	return lock
}

// CheckSlotAvailability reports whether the slot can be booked for the
// half-open window [start, end). A slot that does not exist, belongs to a
// different facility, or is not in "available" status is simply unavailable;
// no error is returned for those cases. Touching windows do not conflict:
// a booking ending at 13:00 leaves [13:00, 15:00) free.
func (s *BookingService) CheckSlotAvailability(ctx context.Context, slotID, facilityID int, start, end time.Time) (bool, error) {
	slot, err := s.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("finding slot: %w", err)
	}
	if slot.FacilityID != facilityID {
		return false, nil
	}
	if slot.Status != domain.SlotAvailable {
		return false, nil
	}

	overlapping, err := s.bookingRepo.HasOverlapping(ctx, slotID, start, end)
	if err != nil {
		return false, fmt.Errorf("checking overlapping bookings: %w", err)
	}
	return !overlapping, nil
}

// CreateBooking reserves the slot for the window. The availability check and
// the write are executed under the slot's lock, so two concurrent requests for
// the same slot cannot both succeed.
func (s *BookingService) CreateBooking(ctx context.Context, userID int, dto domain.CreateBookingDTO) (*domain.Booking, error) {
	if !dto.EndTime.After(dto.StartTime) {
		return nil, ErrInvalidTimeWindow
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, dto.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, ErrVehicleNotOwned
	}

	lock := s.lockSlot(dto.SlotID)
	defer lock.Unlock()

	available, err := s.CheckSlotAvailability(ctx, dto.SlotID, dto.FacilityID, dto.StartTime, dto.EndTime)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrSlotUnavailable
	}

	booking := &domain.Booking{
		UserID:        userID,
		FacilityID:    dto.FacilityID,
		SlotID:        dto.SlotID,
		VehicleID:     dto.VehicleID,
		StartTime:     dto.StartTime,
		EndTime:       dto.EndTime,
		TotalAmount:   dto.TotalAmount,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
		QRCode:        fmt.Sprintf("PE-%d-%d-%s", userID, dto.SlotID, uuid.NewString()),
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	if err := s.setSlotStatus(ctx, dto.SlotID, domain.SlotReserved); err != nil {
		log.Printf("booking %d created but slot %d status update failed: %v", created.ID, dto.SlotID, err)
	}
	return created, nil
}

// CancelBooking cancels the booking on behalf of its owner and releases the
// slot back to "available". A paid booking is marked refunded.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, userID int) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	lock := s.lockSlot(booking.SlotID)
	defer lock.Unlock()

	paymentStatus := booking.PaymentStatus
	if paymentStatus == domain.PaymentPaid {
		paymentStatus = domain.PaymentRefunded
	}
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingCanceled, paymentStatus); err != nil {
		return nil, fmt.Errorf("canceling booking: %w", err)
	}

	if err := s.setSlotStatus(ctx, booking.SlotID, domain.SlotAvailable); err != nil {
		log.Printf("booking %d canceled but slot %d status update failed: %v", bookingID, booking.SlotID, err)
	}

	booking.Status = domain.BookingCanceled
	booking.PaymentStatus = paymentStatus
	return booking, nil
}

func (s *BookingService) GetBookingsByUser(ctx context.Context, userID int) ([]domain.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

// GetBookingsForVendor lists bookings across every facility the vendor owns,
// newest start time first.
func (s *BookingService) GetBookingsForVendor(ctx context.Context, ownerID int) ([]domain.Booking, error) {
	facilities, err := s.facilityRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing vendor facilities: %w", err)
	}
	facilityIDs := make([]int, 0, len(facilities))
	for _, facility := range facilities {
		facilityIDs = append(facilityIDs, facility.ID)
	}
	return s.bookingRepo.FindByFacilityIDs(ctx, facilityIDs)
}

func (s *BookingService) setSlotStatus(ctx context.Context, slotID int, status domain.SlotStatus) error {
	if err := s.slotRepo.UpdateStatus(ctx, slotID, status); err != nil {
		return err
	}
	if s.publisher != nil {
		slot, err := s.slotRepo.FindByID(ctx, slotID)
		if err == nil {
			s.publisher.PublishSlotStatus(domain.SlotStatusEvent{
				FacilityID: slot.FacilityID,
				SlotID:     slot.ID,
				SlotNumber: slot.SlotNumber,
				Status:     slot.Status,
			})
		}
	}
	return nil
}
