package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// formatMetric renders a chained health metric for the dashboard payload.
// Invalid links of the chain show as N/A rather than a misleading zero.
func formatMetric(value float64, valid bool, decimals int) string {
	if !valid {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", decimals, value)
}
