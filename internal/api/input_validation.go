package api

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const minPasswordLength = 6

func parseCredentials(c *fiber.Ctx, requireName bool) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Name = strings.TrimSpace(credentials.Name)
	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)

	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return credentialsInput{}, errors.New("invalid email")
	}
	if requireName && credentials.Name == "" {
		return credentialsInput{}, errors.New("name is required")
	}

	return credentials, nil
}

func validatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password too short")
	}
	return nil
}

func parseProfileInput(c *fiber.Ctx) (profileInput, error) {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return profileInput{}, err
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Goal = strings.TrimSpace(input.Goal)
	return input, nil
}

func parseMealInput(c *fiber.Ctx) (mealInput, error) {
	input := mealInput{}
	if err := c.BodyParser(&input); err != nil {
		return mealInput{}, err
	}
	input.FoodItem = strings.TrimSpace(input.FoodItem)
	input.MealType = strings.TrimSpace(input.MealType)
	return input, nil
}

func parseWaterInput(c *fiber.Ctx) (waterInput, error) {
	input := waterInput{}
	if err := c.BodyParser(&input); err != nil {
		return waterInput{}, err
	}
	return input, nil
}

func parseChatInput(c *fiber.Ctx) (chatInput, error) {
	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return chatInput{}, err
	}
	input.Message = strings.TrimSpace(input.Message)
	return input, nil
}
