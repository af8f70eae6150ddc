package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
	"github.com/Sharath12IND/ParkEase/internal/repository/memory"
)

type bookingFixture struct {
	service     *BookingService
	bookingRepo repository.BookingRepository
	slotRepo    repository.SlotRepository

	facility *domain.ParkingFacility
	slot     *domain.ParkingSlot
	vehicle  *domain.Vehicle
	userID   int
	vendorID int
}

// newBookingFixture wires a BookingService over the in-memory backend with one
// facility, one available slot, and one customer vehicle.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	bookingRepo := memory.NewBookingRepository(store)
	slotRepo := memory.NewSlotRepository(store)
	facilityRepo := memory.NewFacilityRepository(store)
	vehicleRepo := memory.NewVehicleRepository(store)

	facility, err := facilityRepo.Create(ctx, &domain.ParkingFacility{
		Name: "Test Garage", OwnerID: 2, TotalSpaces: 10, HourlyRate: 5,
	})
	require.NoError(t, err)

	slot, err := slotRepo.Create(ctx, &domain.ParkingSlot{
		FacilityID: facility.ID, SlotNumber: "A1", Status: domain.SlotAvailable,
	})
	require.NoError(t, err)

	vehicle, err := vehicleRepo.Create(ctx, &domain.Vehicle{
		UserID: 1, LicensePlate: "TST-001", Make: "Toyota", Model: "Corolla", VehicleType: "sedan",
	})
	require.NoError(t, err)

	return &bookingFixture{
		service:     NewBookingService(bookingRepo, slotRepo, facilityRepo, vehicleRepo, nil),
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		facility:    facility,
		slot:        slot,
		vehicle:     vehicle,
		userID:      1,
		vendorID:    2,
	}
}

func (f *bookingFixture) dto(start, end time.Time) domain.CreateBookingDTO {
	return domain.CreateBookingDTO{
		FacilityID:  f.facility.ID,
		SlotID:      f.slot.ID,
		VehicleID:   f.vehicle.ID,
		StartTime:   start,
		EndTime:     end,
		TotalAmount: 15,
	}
}

func at(h int) time.Time {
	return time.Date(2025, 6, 1, h, 0, 0, 0, time.UTC)
}

func TestCreateBookingConfirmsAndReservesSlot(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking, err := f.service.CreateBooking(ctx, f.userID, f.dto(at(14), at(17)))
	require.NoError(t, err)

	assert.Equal(t, domain.BookingConfirmed, booking.Status)
	assert.Equal(t, domain.PaymentPaid, booking.PaymentStatus)
	assert.True(t, strings.HasPrefix(booking.QRCode, "PE-1-1-"), "qr code %q", booking.QRCode)

	slot, err := f.slotRepo.FindByID(ctx, f.slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotReserved, slot.Status)
}

func TestCreateBookingRejectsInvalidWindow(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBooking(ctx, f.userID, f.dto(at(17), at(14)))
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)

	// Zero-length windows are invalid too.
	_, err = f.service.CreateBooking(ctx, f.userID, f.dto(at(14), at(14)))
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
}

func TestCreateBookingRejectsBorrowedVehicle(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.CreateBooking(context.Background(), 99, f.dto(at(14), at(17)))
	assert.ErrorIs(t, err, ErrVehicleNotOwned)
}

func TestCreateBookingConflictOnReservedSlot(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBooking(ctx, f.userID, f.dto(at(10), at(13)))
	require.NoError(t, err)

	_, err = f.service.CreateBooking(ctx, f.userID, f.dto(at(18), at(19)))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCheckSlotAvailabilityBoundaries(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	// Seed a confirmed booking [10:00, 13:00) directly so the slot itself
	// stays "available" and only the overlap scan decides.
	_, err := f.bookingRepo.Create(ctx, &domain.Booking{
		UserID:     f.userID,
		FacilityID: f.facility.ID,
		SlotID:     f.slot.ID,
		VehicleID:  f.vehicle.ID,
		StartTime:  at(10),
		EndTime:    at(13),
		Status:     domain.BookingConfirmed,
	})
	require.NoError(t, err)

	available, err := f.service.CheckSlotAvailability(ctx, f.slot.ID, f.facility.ID, at(12), at(14))
	require.NoError(t, err)
	assert.False(t, available, "[12,14) overlaps [10,13)")

	available, err = f.service.CheckSlotAvailability(ctx, f.slot.ID, f.facility.ID, at(13), at(15))
	require.NoError(t, err)
	assert.True(t, available, "[13,15) touches [10,13) but does not overlap")
}

func TestCheckSlotAvailabilityMissingOrForeignSlot(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	available, err := f.service.CheckSlotAvailability(ctx, 999, f.facility.ID, at(10), at(11))
	require.NoError(t, err)
	assert.False(t, available, "missing slot is unavailable, not an error")

	available, err = f.service.CheckSlotAvailability(ctx, f.slot.ID, 999, at(10), at(11))
	require.NoError(t, err)
	assert.False(t, available, "slot belongs to a different facility")
}

func TestCancelBookingReleasesSlotAndRefunds(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking, err := f.service.CreateBooking(ctx, f.userID, f.dto(at(14), at(17)))
	require.NoError(t, err)

	canceled, err := f.service.CancelBooking(ctx, booking.ID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCanceled, canceled.Status)
	assert.Equal(t, domain.PaymentRefunded, canceled.PaymentStatus)

	slot, err := f.slotRepo.FindByID(ctx, f.slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotAvailable, slot.Status)

	// Slot is free again: rebooking the same window succeeds.
	_, err = f.service.CreateBooking(ctx, f.userID, f.dto(at(14), at(17)))
	assert.NoError(t, err)
}

func TestCancelBookingRejectsNonOwner(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	booking, err := f.service.CreateBooking(ctx, f.userID, f.dto(at(14), at(17)))
	require.NoError(t, err)

	_, err = f.service.CancelBooking(ctx, booking.ID, 99)
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	// State unchanged.
	fresh, err := f.bookingRepo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, fresh.Status)
}

func TestCancelBookingNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.CancelBooking(context.Background(), 42, f.userID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConcurrentBookingsSameSlotOnlyOneWins(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.CreateBooking(ctx, f.userID, f.dto(at(10), at(13)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent booking may win the slot")
}

func TestGetBookingsForVendor(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBooking(ctx, f.userID, f.dto(at(14), at(17)))
	require.NoError(t, err)

	bookings, err := f.service.GetBookingsForVendor(ctx, f.vendorID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, f.facility.ID, bookings[0].FacilityID)

	// A vendor with no facilities sees no bookings.
	bookings, err = f.service.GetBookingsForVendor(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
