package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sharath12IND/ParkEase/internal/api/handler"
	"github.com/Sharath12IND/ParkEase/internal/api/middleware"
	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/service"
)

func SetupRouter(
	as *service.AuthService,
	vs *service.VehicleService,
	fs *service.FacilityService,
	bs *service.BookingService,
	authMw *middleware.AuthMiddleware,
	wsManager *handler.WebSocketManager,
) *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if wsManager != nil {
		wsHandler := handler.NewWebSocketHandler(wsManager)
		r.GET("/ws", wsHandler.HandleWebSocket)
	}

	authHandler := handler.NewAuthHandler(as)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	vehicleHandler := handler.NewVehicleHandler(vs)
	facilityHandler := handler.NewFacilityHandler(fs)
	bookingHandler := handler.NewBookingHandler(bs)
	reviewHandler := handler.NewReviewHandler(fs)
	vendorHandler := handler.NewVendorHandler(fs, bs)

	api := r.Group("/api")
	{
		// Public discovery routes: no session required to browse.
		api.GET("/facilities", facilityHandler.ListFacilities)
		api.GET("/facilities/:id", facilityHandler.GetFacility)
		api.GET("/facilities/:id/slots", facilityHandler.ListSlots)
		api.GET("/facilities/:id/reviews", reviewHandler.ListReviews)

		authed := api.Group("")
		authed.Use(authMw.Authenticate())
		{
			authed.GET("/vehicles", vehicleHandler.ListVehicles)
			authed.POST("/vehicles", vehicleHandler.CreateVehicle)

			authed.GET("/bookings", bookingHandler.ListBookings)
			authed.POST("/bookings", bookingHandler.CreateBooking)
			authed.PATCH("/bookings/:id/cancel", bookingHandler.CancelBooking)

			authed.POST("/reviews", reviewHandler.CreateReview)

			vendorOnly := authMw.RequireUserType(string(domain.UserTypeVendor))
			authed.POST("/facilities", vendorOnly, facilityHandler.CreateFacility)
			authed.POST("/facilities/:id/slots", vendorOnly, facilityHandler.CreateSlot)

			vendor := authed.Group("/vendor")
			vendor.Use(vendorOnly)
			{
				vendor.GET("/facilities", vendorHandler.ListFacilities)
				vendor.GET("/bookings", vendorHandler.ListBookings)
			}
		}
	}

	return r
}
