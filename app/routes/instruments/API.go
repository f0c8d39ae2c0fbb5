package instruments

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

var validate = validator.New()

// ---- Instrument types ----

func GetInstrumentTypesAPI(c *fiber.Ctx) error {
	types, err := database.GetInstrumentTypes(config.GetDB())
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"types":   types,
	})
}

func CreateInstrumentTypeAPI(c *fiber.Ctx) error {
	var t models.InstrumentType
	if err := c.BodyParser(&t); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if err := validate.Struct(&t); err != nil {
		return fiber.NewError(400, "type_name is required")
	}

	if err := database.CreateInstrumentType(config.GetDB(), &t); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Instrument type created successfully",
		"type":    t,
	})
}

func UpdateInstrumentTypeAPI(c *fiber.Ctx) error {
	var t models.InstrumentType
	if err := c.BodyParser(&t); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	t.ID = c.Params("id")
	if err := validate.Struct(&t); err != nil {
		return fiber.NewError(400, "type_name is required")
	}

	if err := database.UpdateInstrumentType(config.GetDB(), &t); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Instrument type updated successfully",
		"type":    t,
	})
}

func DeleteInstrumentTypeAPI(c *fiber.Ctx) error {
	if err := database.DeleteInstrumentType(config.GetDB(), c.Params("id")); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Instrument type deleted successfully",
	})
}

// ---- Instruments ----

func GetInstrumentsAPI(c *fiber.Ctx) error {
	instruments, err := database.GetInstruments(config.GetDB(), c.Query("branch_id"), c.Query("type_id"))
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"instruments": instruments,
	})
}

func GetInstrumentAPI(c *fiber.Ctx) error {
	instrument, err := database.GetInstrument(config.GetDB(), c.Params("id"))
	if err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"instrument": instrument,
	})
}

func CreateInstrumentAPI(c *fiber.Ctx) error {
	var i models.Instrument
	if err := c.BodyParser(&i); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if err := validate.Struct(&i); err != nil {
		return fiber.NewError(400, "branch_id, instrument_name and type_id are required")
	}
	if i.Status == "" {
		i.Status = "Available"
	}
	if !models.ValidInstrumentStatus(i.Status) {
		return fiber.NewError(400, "Invalid instrument status")
	}

	if err := database.CreateInstrument(config.GetDB(), &i); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"message":    "Instrument created successfully",
		"instrument": i,
	})
}

func UpdateInstrumentAPI(c *fiber.Ctx) error {
	var i models.Instrument
	if err := c.BodyParser(&i); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	i.ID = c.Params("id")
	if err := validate.Struct(&i); err != nil {
		return fiber.NewError(400, "branch_id, instrument_name and type_id are required")
	}
	if i.Status != "" && !models.ValidInstrumentStatus(i.Status) {
		return fiber.NewError(400, "Invalid instrument status")
	}

	if err := database.UpdateInstrument(config.GetDB(), &i); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Instrument updated successfully",
		"instrument": i,
	})
}

func DeleteInstrumentAPI(c *fiber.Ctx) error {
	if err := database.DeleteInstrument(config.GetDB(), c.Params("id")); err != nil {
		return fiber.NewError(registration.HTTPStatus(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Instrument deleted successfully",
	})
}
