package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/controllers"
	"github.com/barbersalon/salon-api/middleware"
)

func SetupServiceRoutes(app *fiber.App, ctl *controllers.ServiceController) {
	service := app.Group("/services")
	service.Get("/", ctl.List)
	service.Get("/popular", ctl.Popular)
	service.Get("/categories", ctl.Categories)
	service.Get("/:id", ctl.Get)
	service.Post("/", middleware.Protected(), middleware.AdminOnly(), ctl.Create)
	service.Put("/:id", middleware.Protected(), middleware.AdminOnly(), ctl.Update)
	service.Delete("/:id", middleware.Protected(), middleware.AdminOnly(), ctl.Delete)
}
