package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/controllers"
)

func SetupContactRoutes(app *fiber.App, ctl *controllers.ContactController) {
	app.Post("/contact", ctl.SendMessage)
}
