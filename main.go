package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-admin/config"
	"hotel-admin/controllers"
	"hotel-admin/routes"
	"hotel-admin/services"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.Server.GinMode)

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Printf("✅ Database connection established (%s) and migrations applied.", cfg.Database.Driver)

	// Initialize services
	customerService := services.NewCustomerService(db)
	roomService := services.NewRoomService(db)
	inventoryService := services.NewInventoryService(db)
	bookingService := services.NewBookingService(db, cfg.Booking.SameDayTurnover)
	bookingInventoryService := services.NewBookingInventoryService(db)

	// Build router
	router := routes.SetupRouter(cfg.Server, routes.Controllers{
		Customers:        controllers.NewCustomerController(customerService),
		Rooms:            controllers.NewRoomController(roomService),
		Inventory:        controllers.NewInventoryController(inventoryService),
		Bookings:         controllers.NewBookingController(bookingService),
		BookingInventory: controllers.NewBookingInventoryController(bookingInventoryService, bookingService),
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️  closing database: %v", err)
		}
	}

	log.Println("✅ Server stopped gracefully")
}
