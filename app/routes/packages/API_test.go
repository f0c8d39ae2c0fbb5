package packages

import (
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

func postPackage(t *testing.T, body string) int {
	t.Helper()
	app := fiber.New()
	SetupPackagesRoutes(app)

	token, err := auth.GenerateJWT("admin-1", "admin", "admin@example.com", "Jane", "Doe", models.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/packages/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreatePackageRejectsZeroSessions(t *testing.T) {
	status := postPackage(t, `{"package_name":"Starter","sessions":0,"max_instruments":1}`)
	assert.Equal(t, 400, status)
}

func TestCreatePackageRejectsTooManyInstruments(t *testing.T) {
	status := postPackage(t, `{"package_name":"Mega","sessions":10,"max_instruments":4}`)
	assert.Equal(t, 400, status)
}

func TestCreatePackageRejectsMissingName(t *testing.T) {
	status := postPackage(t, `{"sessions":10,"max_instruments":2}`)
	assert.Equal(t, 400, status)
}
