package main

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/routes/admin"
	"github.com/micqie/FAS-music/app/routes/auth"
	"github.com/micqie/FAS-music/app/routes/branches"
	"github.com/micqie/FAS-music/app/routes/instruments"
	"github.com/micqie/FAS-music/app/routes/packages"
	"github.com/micqie/FAS-music/app/routes/students"
	"github.com/micqie/FAS-music/app/routes/users"
)

// customErrorHandler keeps API errors as JSON and renders error pages for
// everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("error", fiber.Map{
			"Title":        "Page Not Found - FAS Music Academy",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - FAS Music Academy",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "FAS Music Academy",
		})
	})

	auth.SetupAuthRoutes(app)
	users.SetupUsersRoutes(app)
	admin.SetupAdminRoutes(app)
	branches.SetupBranchesRoutes(app)
	instruments.SetupInstrumentsRoutes(app)
	packages.SetupPackagesRoutes(app)
	students.SetupStudentsRoutes(app)

	log.Println("Server starting on port 8080...")
	log.Fatal(app.Listen(":8080"))
}
