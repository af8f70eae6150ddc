package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository/memory"
)

func TestCreateVehicleSingleDefaultInvariant(t *testing.T) {
	svc := NewVehicleService(memory.NewVehicleRepository(memory.NewStore()))
	ctx := context.Background()

	first, err := svc.CreateVehicle(ctx, 1, domain.VehicleDTO{
		LicensePlate: "AAA-111", Make: "Toyota", Model: "Corolla", VehicleType: "sedan", IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.CreateVehicle(ctx, 1, domain.VehicleDTO{
		LicensePlate: "BBB-222", Make: "Honda", Model: "Civic", VehicleType: "sedan", IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	vehicles, err := svc.GetVehiclesByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	defaults := 0
	for _, v := range vehicles {
		if v.IsDefault {
			defaults++
			assert.Equal(t, second.ID, v.ID)
		}
	}
	assert.Equal(t, 1, defaults, "exactly one default vehicle per user")
}

func TestCreateVehicleNonDefaultLeavesExistingDefault(t *testing.T) {
	svc := NewVehicleService(memory.NewVehicleRepository(memory.NewStore()))
	ctx := context.Background()

	first, err := svc.CreateVehicle(ctx, 1, domain.VehicleDTO{
		LicensePlate: "AAA-111", Make: "Toyota", Model: "Corolla", VehicleType: "sedan", IsDefault: true,
	})
	require.NoError(t, err)

	_, err = svc.CreateVehicle(ctx, 1, domain.VehicleDTO{
		LicensePlate: "BBB-222", Make: "Honda", Model: "Civic", VehicleType: "sedan",
	})
	require.NoError(t, err)

	vehicles, err := svc.GetVehiclesByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.True(t, vehicles[0].IsDefault)
	assert.Equal(t, first.ID, vehicles[0].ID)
	assert.False(t, vehicles[1].IsDefault)
}
