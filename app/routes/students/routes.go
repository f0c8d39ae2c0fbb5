package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	group := app.Group("/api/students", auth.AuthMiddleware, auth.AdminMiddleware)

	group.Get("/", GetStudentsAPI)
	group.Post("/assign-package", AssignPackageAPI)
}
