package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentalite/config"
	"rentalite/database"
	bookingRepoPkg "rentalite/database/repository/booking"
	propertyRepoPkg "rentalite/database/repository/property"
	"rentalite/handlers"
	"rentalite/middleware"
	"rentalite/routes"
	"rentalite/services/booking"
	"rentalite/services/property"
	"rentalite/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	propRepo := propertyRepoPkg.NewMongoPropertyRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings:   bookRepo,
		Properties: propRepo,
	}
	propertyService := &property.DefaultPropertyService{
		Repo: propRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	propertyHandler := handlers.NewPropertyHandler(propertyService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBooking: bookingHandler.CreateBooking,
		ListBookings:  bookingHandler.ListBookings,
		CancelBooking: bookingHandler.CancelBooking,

		ListProperties:  propertyHandler.ListProperties,
		GetPropertyByID: propertyHandler.GetPropertyByID,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
