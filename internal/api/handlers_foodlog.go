package api

import (
	"errors"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AddFoodLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseMealInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	entry, err := handler.foodLogService.LogMeal(user.ID, services.MealInput{
		FoodItem: input.FoodItem,
		Grams:    input.Grams,
		MealType: input.MealType,
	})
	switch {
	case errors.Is(err, services.ErrFoodItemRequired),
		errors.Is(err, services.ErrInvalidGrams),
		errors.Is(err, services.ErrUnknownMealType):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save food log")
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetFoodLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requestedID, err := pathUserID(c)
	if err != nil || requestedID != user.ID {
		return apiError(c, fiber.StatusNotFound, "food logs not found")
	}

	handler.ensureDependencies()
	logs, err := handler.foodLogService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load food logs")
	}

	return c.JSON(fiber.Map{"data": logs})
}

func (handler *Handler) DeleteFoodLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	deleted, err := handler.foodLogService.DeleteLog(user.ID, c.Params("id"))
	switch {
	case errors.Is(err, services.ErrLogNotFound):
		return apiError(c, fiber.StatusNotFound, "food log not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to delete food log")
	}

	return c.JSON(fiber.Map{"ok": true, "deleted": deleted.LogUID})
}
