package packages

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

var validate = validator.New()

func GetPackagesAPI(c *fiber.Ctx) error {
	pkgs, err := database.GetSessionPackages(config.GetDB())
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"packages": pkgs,
	})
}

func CreatePackageAPI(c *fiber.Ctx) error {
	var pkg models.SessionPackage
	if err := c.BodyParser(&pkg); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if err := validate.Struct(&pkg); err != nil {
		return fiber.NewError(400, "package_name, sessions (>= 1) and max_instruments (1-3) are required")
	}

	if err := database.CreateSessionPackage(config.GetDB(), &pkg); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Package created successfully",
		"package": pkg,
	})
}

func UpdatePackageAPI(c *fiber.Ctx) error {
	var pkg models.SessionPackage
	if err := c.BodyParser(&pkg); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	pkg.ID = c.Params("id")
	if err := validate.Struct(&pkg); err != nil {
		return fiber.NewError(400, "package_name, sessions (>= 1) and max_instruments (1-3) are required")
	}

	if err := database.UpdateSessionPackage(config.GetDB(), &pkg); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Package updated successfully",
		"package": pkg,
	})
}

func DeletePackageAPI(c *fiber.Ctx) error {
	if err := database.DeleteSessionPackage(config.GetDB(), c.Params("id")); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Package deleted successfully",
	})
}
