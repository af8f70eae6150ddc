package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

func newBooking(slotID int, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		UserID:        1,
		FacilityID:    1,
		SlotID:        slotID,
		VehicleID:     1,
		StartTime:     start,
		EndTime:       end,
		TotalAmount:   10,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}
}

func TestBookingRepositoryCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewBookingRepository(NewStore())
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	first, err := repo.Create(ctx, newBooking(1, base, base.Add(time.Hour)))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newBooking(1, base.Add(2*time.Hour), base.Add(3*time.Hour)))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestBookingRepositoryHasOverlapping(t *testing.T) {
	repo := NewBookingRepository(NewStore())
	ctx := context.Background()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	_, err := repo.Create(ctx, newBooking(7, at(10), at(13)))
	require.NoError(t, err)

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside existing window", at(11), at(12), true},
		{"straddles existing end", at(12), at(14), true},
		{"starts exactly at existing end", at(13), at(15), false},
		{"ends exactly at existing start", at(8), at(10), false},
		{"fully before", at(6), at(8), false},
		{"fully covers existing", at(9), at(14), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasOverlapping(ctx, 7, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// Other slots never conflict.
	got, err := repo.HasOverlapping(ctx, 8, at(11), at(12))
	require.NoError(t, err)
	assert.False(t, got)
}

func TestBookingRepositoryHasOverlappingIgnoresCanceled(t *testing.T) {
	repo := NewBookingRepository(NewStore())
	ctx := context.Background()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, newBooking(7, day.Add(10*time.Hour), day.Add(13*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, created.ID, domain.BookingCanceled, domain.PaymentRefunded))

	got, err := repo.HasOverlapping(ctx, 7, day.Add(11*time.Hour), day.Add(12*time.Hour))
	require.NoError(t, err)
	assert.False(t, got)
}

func TestBookingRepositoryFindByUserIDSortsByStartTimeDesc(t *testing.T) {
	repo := NewBookingRepository(NewStore())
	ctx := context.Background()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	early, err := repo.Create(ctx, newBooking(1, day.Add(8*time.Hour), day.Add(9*time.Hour)))
	require.NoError(t, err)
	late, err := repo.Create(ctx, newBooking(2, day.Add(15*time.Hour), day.Add(16*time.Hour)))
	require.NoError(t, err)

	bookings, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, late.ID, bookings[0].ID)
	assert.Equal(t, early.ID, bookings[1].ID)
}

func TestBookingRepositoryFindByFacilityIDs(t *testing.T) {
	repo := NewBookingRepository(NewStore())
	ctx := context.Background()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	inFacility := newBooking(1, day.Add(10*time.Hour), day.Add(11*time.Hour))
	inFacility.FacilityID = 3
	_, err := repo.Create(ctx, inFacility)
	require.NoError(t, err)

	other := newBooking(2, day.Add(12*time.Hour), day.Add(13*time.Hour))
	other.FacilityID = 9
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)

	bookings, err := repo.FindByFacilityIDs(ctx, []int{3})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 3, bookings[0].FacilityID)

	bookings, err = repo.FindByFacilityIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingRepositoryUpdateStatusNotFound(t *testing.T) {
	repo := NewBookingRepository(NewStore())
	err := repo.UpdateStatus(context.Background(), 42, domain.BookingCanceled, domain.PaymentRefunded)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
