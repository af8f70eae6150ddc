package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sharath12IND/ParkEase/internal/api"
	"github.com/Sharath12IND/ParkEase/internal/api/handler"
	"github.com/Sharath12IND/ParkEase/internal/api/middleware"
	"github.com/Sharath12IND/ParkEase/internal/config"
	"github.com/Sharath12IND/ParkEase/internal/repository"
	"github.com/Sharath12IND/ParkEase/internal/repository/memory"
	"github.com/Sharath12IND/ParkEase/internal/repository/postgresql"
	"github.com/Sharath12IND/ParkEase/internal/seed"
	"github.com/Sharath12IND/ParkEase/internal/service"
)

type repositories struct {
	users      repository.UserRepository
	vehicles   repository.VehicleRepository
	facilities repository.FacilityRepository
	slots      repository.SlotRepository
	bookings   repository.BookingRepository
	reviews    repository.ReviewRepository
}

func main() {
	cfg := config.Load()

	var repos repositories
	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgresql.NewDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		repos = repositories{
			users:      postgresql.NewPgUserRepository(db),
			vehicles:   postgresql.NewPgVehicleRepository(db),
			facilities: postgresql.NewPgFacilityRepository(db),
			slots:      postgresql.NewPgSlotRepository(db),
			bookings:   postgresql.NewPgBookingRepository(db),
			reviews:    postgresql.NewPgReviewRepository(db),
		}
		log.Println("Using postgres storage")
	case "memory":
		store := memory.NewStore()
		repos = repositories{
			users:      memory.NewUserRepository(store),
			vehicles:   memory.NewVehicleRepository(store),
			facilities: memory.NewFacilityRepository(store),
			slots:      memory.NewSlotRepository(store),
			bookings:   memory.NewBookingRepository(store),
			reviews:    memory.NewReviewRepository(store),
		}
		log.Println("Using in-memory storage")
	default:
		log.Fatalf("Unknown storage driver %q (want \"memory\" or \"postgres\")", cfg.StorageDriver)
	}

	wsManager := handler.NewWebSocketManager()
	go wsManager.Start()

	authService := service.NewAuthService(repos.users, cfg.JWTSecret, cfg.JWTExpirationHours)
	vehicleService := service.NewVehicleService(repos.vehicles)
	facilityService := service.NewFacilityService(repos.facilities, repos.slots, repos.reviews)
	bookingService := service.NewBookingService(repos.bookings, repos.slots, repos.facilities, repos.vehicles, wsManager)

	if cfg.StorageDriver == "memory" && cfg.SeedDemoData {
		if err := seed.Run(context.Background(), authService, vehicleService, facilityService); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	authMw := middleware.NewAuthMiddleware(authService)
	router := api.SetupRouter(authService, vehicleService, facilityService, bookingService, authMw, wsManager)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
