package instruments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/routes/auth"
)

func SetupInstrumentsRoutes(app *fiber.App) {
	group := app.Group("/api/instruments")

	// Types are nested under the instruments group; the static segment must
	// be registered before the :id parameter routes.
	group.Get("/types", GetInstrumentTypesAPI)
	group.Post("/types", auth.AuthMiddleware, auth.AdminMiddleware, CreateInstrumentTypeAPI)
	group.Put("/types/:id", auth.AuthMiddleware, auth.AdminMiddleware, UpdateInstrumentTypeAPI)
	group.Delete("/types/:id", auth.AuthMiddleware, auth.AdminMiddleware, DeleteInstrumentTypeAPI)

	group.Get("/", GetInstrumentsAPI)
	group.Get("/:id", GetInstrumentAPI)
	group.Post("/", auth.AuthMiddleware, auth.AdminMiddleware, CreateInstrumentAPI)
	group.Put("/:id", auth.AuthMiddleware, auth.AdminMiddleware, UpdateInstrumentAPI)
	group.Delete("/:id", auth.AuthMiddleware, auth.AdminMiddleware, DeleteInstrumentAPI)
}
