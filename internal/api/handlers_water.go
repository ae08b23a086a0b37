package api

import (
	"errors"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetWaterIntake(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	milliliters, err := handler.waterService.Intake(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load water intake")
	}

	return c.JSON(fiber.Map{
		"milliliters": milliliters,
		"glasses":     milliliters / services.GlassSizeMl,
	})
}

func (handler *Handler) AddWaterIntake(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseWaterInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	total, err := handler.waterService.Add(user.ID, input.Milliliters)
	switch {
	case errors.Is(err, services.ErrInvalidWaterAmount):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save water intake")
	}

	return c.JSON(fiber.Map{
		"milliliters": total,
		"glasses":     total / services.GlassSizeMl,
	})
}

func (handler *Handler) ResetWaterIntake(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	if err := handler.waterService.Reset(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset water intake")
	}

	return c.JSON(fiber.Map{"milliliters": 0, "glasses": 0})
}
