package users

import (
	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	users := app.Group("/api/users")

	users.Post("/register", RegisterAPI)
	users.Get("/check-registration-status", CheckRegistrationStatusAPI)
	users.Post("/pay-registration-fee", PayRegistrationFeeAPI)
}
