package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/controllers"
	"github.com/barbersalon/salon-api/middleware"
)

// SetupAdminRoutes configures the back-office endpoints, all behind the admin
// guard.
func SetupAdminRoutes(app *fiber.App, admin *controllers.AdminController, staff *controllers.StaffController, contact *controllers.ContactController) {
	grp := app.Group("/admin", middleware.Protected(), middleware.AdminOnly())
	grp.Get("/dashboard", admin.Dashboard)
	grp.Get("/bookings", admin.ListBookings)
	grp.Patch("/bookings/:id/confirm", admin.ConfirmBooking)
	grp.Patch("/bookings/:id/cancel", admin.CancelBooking)
	grp.Patch("/bookings/:id/complete", admin.CompleteBooking)
	grp.Put("/bookings/:id", admin.UpdateBooking)
	grp.Delete("/bookings/:id", admin.DeleteBooking)
	grp.Get("/staff", staff.ListAll)
	grp.Get("/messages", contact.ListMessages)
	grp.Patch("/messages/:id/read", contact.MarkRead)
}
