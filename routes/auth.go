package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/controllers"
)

func SetupAuthRoutes(app *fiber.App, ctl *controllers.AuthController) {
	auth := app.Group("/auth")
	auth.Post("/login", ctl.Login)
}
