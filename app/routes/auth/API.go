package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/registration"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(400, "Username and password are required")
	}

	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if err != nil {
		if _, ok := err.(*registration.NotFoundError); ok {
			authErr := &registration.AuthError{Message: "Invalid username or password"}
			return fiber.NewError(registration.HTTPStatus(authErr), authErr.Error())
		}
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		authErr := &registration.AuthError{Message: "Invalid username or password"}
		return fiber.NewError(registration.HTTPStatus(authErr), authErr.Error())
	}

	// Student accounts stay Inactive until an admin approves the
	// registration; password correctness alone does not grant access.
	if user.Status != registration.AccountActive {
		authErr := &registration.AuthError{Message: "Your account is pending admin approval", Forbidden: true}
		return fiber.NewError(registration.HTTPStatus(authErr), authErr.Error())
	}

	token, err := GenerateJWT(user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.RoleName)
	if err != nil {
		return fiber.NewError(500, "Failed to generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success":              true,
		"message":              "Login successful",
		"user":                 user,
		"must_change_password": user.MustChangePassword,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}

// ChangePasswordAPI verifies the old password, enforces the password policy on
// the new one, and clears the forced-change flag set for walk-in accounts.
func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		UserID      string `json:"user_id"`
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.UserID == "" || req.OldPassword == "" || req.NewPassword == "" {
		return fiber.NewError(400, "user_id, old_password and new_password are required")
	}

	if err := registration.ValidatePassword(req.NewPassword); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	user, err := database.GetUserByID(config.GetDB(), req.UserID)
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	if !CheckPasswordHash(req.OldPassword, user.Password) {
		authErr := &registration.AuthError{Message: "Old password is incorrect"}
		return fiber.NewError(registration.HTTPStatus(authErr), authErr.Error())
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(500, "Failed to hash password")
	}

	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hashed); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}
