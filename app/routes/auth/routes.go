package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	users := app.Group("/api/users")

	users.Post("/login", LoginAPI)
	users.Post("/logout", LogoutAPI)
	users.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT from the cookie or Authorization header and
// sets the caller's identity on the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")

	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return fiber.NewError(401, "No token found")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return fiber.NewError(401, "Invalid token")
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("username", claims.Username)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", claims.Role)

	return c.Next()
}

// AdminMiddleware allows only authenticated admins through. It must run after
// AuthMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	role, _ := c.Locals("user_role").(string)
	if role != models.RoleAdmin {
		return fiber.NewError(403, "Insufficient permissions")
	}
	return c.Next()
}
