package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-admin/config"
	"hotel-admin/controllers"
	"hotel-admin/middleware"
)

// Controllers groups the handlers mounted under /api.
type Controllers struct {
	Customers        *controllers.CustomerController
	Rooms            *controllers.RoomController
	Inventory        *controllers.InventoryController
	Bookings         *controllers.BookingController
	BookingInventory *controllers.BookingInventoryController
}

// SetupRouter receives the controller instances and wires the routes.
func SetupRouter(cfg config.ServerConfig, ctl Controllers) *gin.Engine {
	if err := RegisterValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())

	allowCredentials := true
	for _, origin := range cfg.CorsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.GET("", ctl.Customers.GetCustomers)
			// must be registered before /:id
			customers.GET("/stats", ctl.Customers.GetCustomerStats)
			customers.GET("/:id", ctl.Customers.GetCustomer)
			customers.POST("", ctl.Customers.CreateCustomer)
			customers.PUT("/:id", ctl.Customers.UpdateCustomer)
			customers.PATCH("/:id", ctl.Customers.UpdateCustomer)
			customers.DELETE("/:id", ctl.Customers.DeleteCustomer)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctl.Rooms.GetRooms)
			rooms.GET("/stats", ctl.Rooms.GetRoomStats)
			rooms.GET("/:id", ctl.Rooms.GetRoom)
			rooms.POST("", ctl.Rooms.CreateRoom)
			rooms.PATCH("/:id", ctl.Rooms.UpdateRoom)
			rooms.PUT("/:id", ctl.Rooms.UpdateRoom)
			rooms.DELETE("/:id", ctl.Rooms.DeleteRoom)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", ctl.Inventory.GetInventory)
			inventory.GET("/stats", ctl.Inventory.GetInventoryStats)
			inventory.GET("/:id", ctl.Inventory.GetInventoryItem)
			inventory.POST("", ctl.Inventory.CreateInventoryItem)
			inventory.PATCH("/:id", ctl.Inventory.UpdateInventoryItem)
			inventory.PUT("/:id", ctl.Inventory.UpdateInventoryItem)
			inventory.DELETE("/:id", ctl.Inventory.DeleteInventoryItem)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", ctl.Bookings.GetBookings)
			bookings.POST("", ctl.Bookings.CreateBooking)

			bookings.GET("/stats", ctl.Bookings.GetBookingStats)
			bookings.GET("/availability", ctl.Bookings.CheckAvailability)
			bookings.GET("/quote", ctl.Bookings.GetQuote)

			bookings.GET("/:id", ctl.Bookings.GetBooking)
			bookings.PUT("/:id", ctl.Bookings.UpdateBooking)
			bookings.PATCH("/:id", ctl.Bookings.UpdateBooking)
			bookings.DELETE("/:id", ctl.Bookings.DeleteBooking)

			bookings.GET("/:id/inventory", ctl.BookingInventory.ListItems)
			bookings.POST("/:id/inventory", ctl.BookingInventory.AttachItem)
			bookings.PATCH("/:id/inventory/:inventory_id", ctl.BookingInventory.UpdateItem)
			bookings.DELETE("/:id/inventory/:inventory_id", ctl.BookingInventory.DetachItem)
		}
	}

	return r
}
