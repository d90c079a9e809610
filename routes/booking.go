package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/controllers"
)

// SetupBookingRoutes configures the public booking endpoints.
func SetupBookingRoutes(app *fiber.App, ctl *controllers.BookingController) {
	booking := app.Group("/bookings")
	booking.Get("/slots", ctl.AvailableTimeSlots)
	booking.Get("/upcoming", ctl.Upcoming)
	booking.Get("/:id", ctl.Get)
	booking.Post("/", ctl.Create)
}
