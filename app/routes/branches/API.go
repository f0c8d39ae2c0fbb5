package branches

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

var validate = validator.New()

func GetBranchesAPI(c *fiber.Ctx) error {
	includeInactive := c.Query("include_inactive") == "true"

	branches, err := database.GetBranches(config.GetDB(), includeInactive)
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"branches": branches,
	})
}

func GetBranchAPI(c *fiber.Ctx) error {
	branch, err := database.GetBranch(config.GetDB(), c.Params("id"))
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"branch":  branch,
	})
}

func CreateBranchAPI(c *fiber.Ctx) error {
	var branch models.Branch
	if err := c.BodyParser(&branch); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if err := validate.Struct(&branch); err != nil {
		return fiber.NewError(400, "branch_name is required")
	}
	if branch.Status == "" {
		branch.Status = registration.AccountActive
	}

	if err := database.CreateBranch(config.GetDB(), &branch); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Branch created successfully",
		"branch":  branch,
	})
}

func UpdateBranchAPI(c *fiber.Ctx) error {
	var branch models.Branch
	if err := c.BodyParser(&branch); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	branch.ID = c.Params("id")
	if err := validate.Struct(&branch); err != nil {
		return fiber.NewError(400, "branch_name is required")
	}
	if branch.Status == "" {
		branch.Status = registration.AccountActive
	}

	if err := database.UpdateBranch(config.GetDB(), &branch); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Branch updated successfully",
		"branch":  branch,
	})
}

// DeleteBranchAPI deactivates the branch rather than removing the row, so
// registered students keep a valid branch reference.
func DeleteBranchAPI(c *fiber.Ctx) error {
	if err := database.DeactivateBranch(config.GetDB(), c.Params("id")); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Branch deactivated successfully",
	})
}
