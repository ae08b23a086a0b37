package api

import (
	"strconv"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

// pathUserID parses the :userId route parameter and checks it against the
// authenticated user. Other users' data reads as not found.
func pathUserID(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requestedID, err := pathUserID(c)
	if err != nil || requestedID != user.ID {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}

	return c.JSON(user)
}

func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseProfileInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := services.ValidateProfileInput(services.ProfileInput{
		Name:     input.Name,
		Age:      input.Age,
		HeightCm: input.Height,
		WeightKg: input.Weight,
		Gender:   input.Gender,
		Goal:     input.Goal,
	}); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	handler.ensureDependencies()
	updates := map[string]any{
		"name":      input.Name,
		"age":       input.Age,
		"height_cm": input.Height,
		"weight_kg": input.Weight,
		"gender":    input.Gender,
		"goal":      input.Goal,
	}
	if err := handler.repositories.Users.UpdateProfile(user.ID, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	updated, err := handler.authService.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(updated)
}
