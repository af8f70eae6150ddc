// Package seed loads a small demo data set through the regular services, so
// every invariant (hashed passwords, single default vehicle, derived ratings)
// holds for seeded records exactly as it would for API-created ones.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/service"
)

func Run(
	ctx context.Context,
	authService *service.AuthService,
	vehicleService *service.VehicleService,
	facilityService *service.FacilityService,
) error {
	vendor, err := authService.Register(ctx, domain.RegisterUserDTO{
		Username: "mallowner",
		Password: "password123",
		Email:    "mall@example.com",
		FullName: "Mall Owner",
		UserType: "vendor",
	})
	if err != nil {
		return fmt.Errorf("seeding vendor: %w", err)
	}

	customer, err := authService.Register(ctx, domain.RegisterUserDTO{
		Username: "customer",
		Password: "password123",
		Email:    "customer@example.com",
		FullName: "John Customer",
		UserType: "customer",
	})
	if err != nil {
		return fmt.Errorf("seeding customer: %w", err)
	}

	dailyRate1 := 25.99
	facility1, err := facilityService.CreateFacility(ctx, vendor.ID, domain.ParkingFacilityDTO{
		Name:            "City Center Mall Parking",
		Address:         "123 Financial District Avenue",
		City:            "New York",
		State:           "NY",
		ZipCode:         "10004",
		Description:     "Premium parking at the heart of downtown financial district",
		Latitude:        40.7128,
		Longitude:       -74.006,
		TotalSpaces:     250,
		HourlyRate:      5.99,
		DailyRate:       &dailyRate1,
		HasEVCharging:   true,
		HasCovered:      true,
		HasDisabled:     true,
		Has24HourAccess: true,
		HasSecurity:     true,
		ImageUrls: []string{
			"https://images.unsplash.com/photo-1621928372414-30e144d111a0",
			"https://images.unsplash.com/photo-1611521639504-f64cd0dd0d2d",
		},
	})
	if err != nil {
		return fmt.Errorf("seeding facility 1: %w", err)
	}

	dailyRate2 := 20.0
	facility2, err := facilityService.CreateFacility(ctx, vendor.ID, domain.ParkingFacilityDTO{
		Name:            "Westfield Shopping Center",
		Address:         "456 Central Business District",
		City:            "Chicago",
		State:           "IL",
		ZipCode:         "60601",
		Description:     "Convenient parking near premium shopping experience",
		Latitude:        41.8781,
		Longitude:       -87.6298,
		TotalSpaces:     180,
		HourlyRate:      4.5,
		DailyRate:       &dailyRate2,
		HasCovered:      true,
		HasDisabled:     true,
		Has24HourAccess: true,
		HasSecurity:     true,
		ImageUrls: []string{
			"https://images.unsplash.com/photo-1617714651073-9a0a8f5d7cf2",
		},
	})
	if err != nil {
		return fmt.Errorf("seeding facility 2: %w", err)
	}

	for _, facility := range []*domain.ParkingFacility{facility1, facility2} {
		for i := 1; i <= 20; i++ {
			level := (i-1)/10 + 1
			slotType := "standard"
			switch {
			case i%5 == 0:
				slotType = "ev"
			case i%7 == 0:
				slotType = "disabled"
			}
			letter := "A"
			if level == 2 {
				letter = "B"
			}
			number := i % 10
			if number == 0 {
				number = 10
			}
			_, err := facilityService.CreateSlot(ctx, vendor.ID, facility.ID, domain.ParkingSlotDTO{
				SlotNumber: fmt.Sprintf("%s%d", letter, number),
				Level:      level,
				SlotType:   slotType,
			})
			if err != nil {
				return fmt.Errorf("seeding slots for facility %d: %w", facility.ID, err)
			}
		}
	}

	_, err = vehicleService.CreateVehicle(ctx, customer.ID, domain.VehicleDTO{
		LicensePlate: "EVR-423",
		Make:         "Tesla",
		Model:        "Model 3",
		VehicleType:  "ev",
		IsDefault:    true,
	})
	if err != nil {
		return fmt.Errorf("seeding vehicle: %w", err)
	}

	_, err = facilityService.AddReview(ctx, customer.ID, domain.ReviewDTO{
		FacilityID: facility1.ID,
		Rating:     5,
		Comment:    "Great location, easy to find, and the QR code entry system worked flawlessly.",
	})
	if err != nil {
		return fmt.Errorf("seeding review 1: %w", err)
	}
	_, err = facilityService.AddReview(ctx, customer.ID, domain.ReviewDTO{
		FacilityID: facility2.ID,
		Rating:     4,
		Comment:    "Very convenient, the app made it easy to extend my parking time. Spaces are a bit tight.",
	})
	if err != nil {
		return fmt.Errorf("seeding review 2: %w", err)
	}

	log.Printf("seeded demo data: vendor %q, customer %q, 2 facilities, 40 slots", vendor.Username, customer.Username)
	return nil
}
