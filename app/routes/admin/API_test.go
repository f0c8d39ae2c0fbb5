package admin

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/routes/auth"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func testApp() *fiber.App {
	app := fiber.New()
	SetupAdminRoutes(app)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateJWT("admin-1", "admin", "admin@example.com", "Jane", "Doe", models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func adminPost(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/api/admin/get-pending-registrations", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAdminRoutesRejectStudentRole(t *testing.T) {
	app := testApp()

	token, err := auth.GenerateJWT("user-1", "jdoe", "jdoe@example.com", "John", "Doe", models.RoleStudent)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/admin/approve-student", strings.NewReader(`{"student_id":"s-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestConfirmPaymentRequiresStudentID(t *testing.T) {
	app := testApp()

	status, body := adminPost(t, app, "/api/admin/confirm-payment", `{"amount": "500.00"}`)
	assert.Equal(t, 400, status)
	assert.Contains(t, body, "student_id is required")
}

func TestConfirmPaymentRequiresPaymentMethod(t *testing.T) {
	app := testApp()

	status, body := adminPost(t, app, "/api/admin/confirm-payment", `{
		"student_id": "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		"amount": "500.00"
	}`)
	assert.Equal(t, 400, status)
	assert.Contains(t, body, "Field payment_method is required")
}

func TestApproveStudentRequiresStudentID(t *testing.T) {
	app := testApp()

	status, body := adminPost(t, app, "/api/admin/approve-student", `{}`)
	assert.Equal(t, 400, status)
	assert.Contains(t, body, "student_id is required")
}

func TestRejectRegistrationRequiresStudentID(t *testing.T) {
	app := testApp()

	status, body := adminPost(t, app, "/api/admin/reject-registration", `{}`)
	assert.Equal(t, 400, status)
	assert.Contains(t, body, "student_id is required")
}

func TestRegistrationDetailsRequiresStudentID(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/api/admin/get-registration-details", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
