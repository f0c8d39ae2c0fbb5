package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/registration"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllRegistrations(config.GetDB())
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"students": students,
		"count":    len(students),
	})
}

// AssignPackageAPI links a session package to a student. The student's
// instrument preference count must fit within the package limit.
func AssignPackageAPI(c *fiber.Ctx) error {
	type assignRequest struct {
		StudentID string `json:"student_id"`
		PackageID string `json:"package_id"`
	}

	var req assignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.StudentID == "" || req.PackageID == "" {
		return fiber.NewError(400, "student_id and package_id are required")
	}
	if !registration.ValidID(req.StudentID) || !registration.ValidID(req.PackageID) {
		return fiber.NewError(400, "Invalid student_id or package_id")
	}

	if err := database.AssignSessionPackage(config.GetDB(), req.StudentID, req.PackageID); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Package assigned successfully",
	})
}
