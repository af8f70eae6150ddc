package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharath12IND/ParkEase/internal/domain"
)

func TestVehicleRepositoryClearDefaultForUser(t *testing.T) {
	repo := NewVehicleRepository(NewStore())
	ctx := context.Background()

	mine, err := repo.Create(ctx, &domain.Vehicle{UserID: 1, LicensePlate: "AAA-111", IsDefault: true})
	require.NoError(t, err)
	theirs, err := repo.Create(ctx, &domain.Vehicle{UserID: 2, LicensePlate: "BBB-222", IsDefault: true})
	require.NoError(t, err)

	require.NoError(t, repo.ClearDefaultForUser(ctx, 1))

	got, err := repo.FindByID(ctx, mine.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)

	// Another user's default is untouched.
	got, err = repo.FindByID(ctx, theirs.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
}

func TestVehicleRepositoryFindByUserIDOrdersByID(t *testing.T) {
	repo := NewVehicleRepository(NewStore())
	ctx := context.Background()

	for _, plate := range []string{"AAA-111", "BBB-222", "CCC-333"} {
		_, err := repo.Create(ctx, &domain.Vehicle{UserID: 1, LicensePlate: plate})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.Vehicle{UserID: 2, LicensePlate: "ZZZ-999"})
	require.NoError(t, err)

	vehicles, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, vehicles, 3)
	assert.Equal(t, "AAA-111", vehicles[0].LicensePlate)
	assert.Equal(t, "CCC-333", vehicles[2].LicensePlate)
}
