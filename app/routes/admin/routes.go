package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/routes/auth"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", auth.AuthMiddleware, auth.AdminMiddleware)

	adminGroup.Post("/confirm-payment", ConfirmPaymentAPI)
	adminGroup.Post("/approve-student", ApproveStudentAPI)
	adminGroup.Post("/reject-registration", RejectRegistrationAPI)
	adminGroup.Get("/get-pending-registrations", GetPendingRegistrationsAPI)
	adminGroup.Get("/get-all-registrations", GetAllRegistrationsAPI)
	adminGroup.Get("/get-registration-details", GetRegistrationDetailsAPI)
}
