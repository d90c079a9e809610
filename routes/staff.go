package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/controllers"
	"github.com/barbersalon/salon-api/middleware"
)

func SetupStaffRoutes(app *fiber.App, ctl *controllers.StaffController) {
	staff := app.Group("/staff")
	staff.Get("/", ctl.List)
	staff.Get("/:id", ctl.Get)
	staff.Get("/:id/gallery", ctl.Gallery)
	staff.Post("/", middleware.Protected(), middleware.AdminOnly(), ctl.Create)
	staff.Put("/:id", middleware.Protected(), middleware.AdminOnly(), ctl.Update)
	staff.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), ctl.Delete)
	staff.Post("/:id/gallery", middleware.Protected(), middleware.AdminOnly(), ctl.AddGalleryImage)
	staff.Delete("/gallery/:imageId", middleware.Protected(), middleware.AdminOnly(), ctl.RemoveGalleryImage)
}
