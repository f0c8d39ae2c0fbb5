package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/registration"
)

type studentActionRequest struct {
	StudentID string `json:"student_id"`
}

// ConfirmPaymentAPI records an admin-entered registration fee payment. It uses
// the same ledger accumulator as the student's self-service path, so a settled
// registration rejects the payment with a conflict either way.
func ConfirmPaymentAPI(c *fiber.Ctx) error {
	type confirmRequest struct {
		StudentID     string          `json:"student_id"`
		Amount        decimal.Decimal `json:"amount"`
		PaymentMethod string          `json:"payment_method"`
		ReceiptNumber string          `json:"receipt_number"`
		Notes         string          `json:"notes"`
	}

	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.StudentID == "" {
		return fiber.NewError(400, "student_id is required")
	}
	if !registration.ValidID(req.StudentID) {
		return fiber.NewError(400, "Invalid student_id")
	}
	if req.PaymentMethod == "" {
		return fiber.NewError(400, "Field payment_method is required")
	}

	result, err := database.RecordRegistrationPayment(
		config.GetDB(), req.StudentID, req.Amount, req.PaymentMethod, req.ReceiptNumber, req.Notes,
	)
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":             true,
		"message":             "Payment confirmed successfully",
		"paid_amount":         result.PaidAmount,
		"remaining_amount":    result.RemainingAmount,
		"registration_status": result.RegistrationStatus,
		"receipt_number":      result.ReceiptNumber,
	})
}

// ApproveStudentAPI moves a registration to Approved and activates the linked
// account. Approving an already approved student is a no-op success.
func ApproveStudentAPI(c *fiber.Ctx) error {
	var req studentActionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.StudentID == "" {
		return fiber.NewError(400, "student_id is required")
	}
	if !registration.ValidID(req.StudentID) {
		return fiber.NewError(400, "Invalid student_id")
	}

	if err := database.ApproveStudent(config.GetDB(), req.StudentID); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student approved successfully",
	})
}

// RejectRegistrationAPI moves a registration to Rejected and deactivates the
// linked account. An approved registration cannot be rejected.
func RejectRegistrationAPI(c *fiber.Ctx) error {
	var req studentActionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.StudentID == "" {
		return fiber.NewError(400, "student_id is required")
	}
	if !registration.ValidID(req.StudentID) {
		return fiber.NewError(400, "Invalid student_id")
	}

	if err := database.RejectStudent(config.GetDB(), req.StudentID); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Registration rejected",
	})
}

func GetPendingRegistrationsAPI(c *fiber.Ctx) error {
	students, err := database.GetPendingRegistrations(config.GetDB())
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"students": students,
		"count":    len(students),
	})
}

func GetAllRegistrationsAPI(c *fiber.Ctx) error {
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

func GetRegistrationDetailsAPI(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	if studentID == "" {
		return fiber.NewError(400, "student_id is required")
	}
	if !registration.ValidID(studentID) {
		return fiber.NewError(400, "Invalid student_id")
	}

	details, err := database.GetRegistrationDetails(config.GetDB(), studentID)
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"details": details,
	})
}
