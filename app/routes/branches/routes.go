package branches

import (
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/routes/auth"
)

func SetupBranchesRoutes(app *fiber.App) {
	group := app.Group("/api/branches")

	// Applicants need the branch list to fill the intake form.
	group.Get("/", GetBranchesAPI)
	group.Get("/:id", GetBranchAPI)

	group.Post("/", auth.AuthMiddleware, auth.AdminMiddleware, CreateBranchAPI)
	group.Put("/:id", auth.AuthMiddleware, auth.AdminMiddleware, UpdateBranchAPI)
	group.Delete("/:id", auth.AuthMiddleware, auth.AdminMiddleware, DeleteBranchAPI)
}
