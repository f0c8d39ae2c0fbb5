package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/registration"
)

// RegisterAPI is the public intake endpoint. Validation runs before any
// database work so a bad submission never opens a transaction.
func RegisterAPI(c *fiber.Ctx) error {
	var req registration.IntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	result, err := database.RegisterStudent(config.GetDB(), &req)
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.Status(201).JSON(fiber.Map{
		"success":                 true,
		"message":                 "Registration submitted successfully",
		"student_id":              result.StudentID,
		"guardian_id":             result.GuardianID,
		"user_id":                 result.UserID,
		"username":                result.Username,
		"registration_status":     registration.StatusPending,
		"registration_fee_amount": result.FeeAmount,
		"account_status":          registration.AccountInactive,
	})
}

// CheckRegistrationStatusAPI lets an applicant poll fee and approval progress.
func CheckRegistrationStatusAPI(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	if studentID == "" {
		return fiber.NewError(400, "student_id is required")
	}
	if !registration.ValidID(studentID) {
		return fiber.NewError(400, "Invalid student_id")
	}

	snapshot, err := database.GetRegistrationSnapshot(config.GetDB(), studentID)
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	remaining := snapshot.RegistrationFeeAmount.Sub(snapshot.RegistrationFeePaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return c.JSON(fiber.Map{
		"success":                 true,
		"student":                 snapshot,
		"remaining_amount":        remaining,
		"registration_fee_settled": snapshot.RegistrationStatus == registration.StatusFeePaid || snapshot.RegistrationStatus == registration.StatusApproved,
	})
}

type paymentRequest struct {
	StudentID     string          `json:"student_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	ReceiptNumber string          `json:"receipt_number"`
	Notes         string          `json:"notes"`
}

// PayRegistrationFeeAPI records a self-service fee payment. The admin
// confirm-payment endpoint runs through the same accumulator, so the settled
// guard holds no matter who records the money.
func PayRegistrationFeeAPI(c *fiber.Ctx) error {
	var req paymentRequest
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
		"message":             "Payment recorded successfully",
		"paid_amount":         result.PaidAmount,
		"remaining_amount":    result.RemainingAmount,
		"registration_status": result.RegistrationStatus,
		"receipt_number":      result.ReceiptNumber,
	})
}
