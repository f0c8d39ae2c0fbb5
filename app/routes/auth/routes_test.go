package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micqie/FAS-music/app/models"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	app.Get("/api/admin-only", AuthMiddleware, AdminMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/api/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddlewareValidCookie(t *testing.T) {
	app := protectedApp()

	token, err := GenerateJWT("user-1", "jdoe", "jdoe@example.com", "John", "Doe", models.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set("Cookie", "jwt_token="+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAdminMiddlewareRejectsStudent(t *testing.T) {
	app := protectedApp()

	token, err := GenerateJWT("user-1", "jdoe", "jdoe@example.com", "John", "Doe", models.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	app := protectedApp()

	token, err := GenerateJWT("user-2", "admin", "admin@example.com", "Jane", "Doe", models.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
