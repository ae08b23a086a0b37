package api

import (
	"errors"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Chat(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	if handler.chatService == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "assistant is not configured")
	}

	input, err := parseChatInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reply, err := handler.chatService.Ask(c.Context(), *user, input.Message)
	switch {
	case errors.Is(err, services.ErrEmptyChatMessage):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusBadGateway, "assistant is unavailable")
	}

	return c.JSON(fiber.Map{"response": reply})
}
