package packages

import (
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/routes/auth"
)

func SetupPackagesRoutes(app *fiber.App) {
	group := app.Group("/api/packages")

	group.Get("/", GetPackagesAPI)
	group.Post("/", auth.AuthMiddleware, auth.AdminMiddleware, CreatePackageAPI)
	group.Put("/:id", auth.AuthMiddleware, auth.AdminMiddleware, UpdatePackageAPI)
	group.Delete("/:id", auth.AuthMiddleware, auth.AdminMiddleware, DeletePackageAPI)
}
