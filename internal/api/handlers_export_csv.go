package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ExportCSV streams the caller's full food-log history as a spreadsheet.
// Timestamps are split into date and time columns in the server location
// so the file matches what the dashboard shows.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	logs, err := handler.foodLogService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load food logs")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write([]string{"date", "time", "meal_type", "food_item", "grams", "calories"}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, entry := range logs {
		localized := entry.Date.In(handler.location)
		record := []string{
			localized.Format("2006-01-02"),
			localized.Format("15:04"),
			entry.MealType,
			entry.FoodItem,
			strconv.FormatFloat(entry.Grams, 'f', -1, 64),
			strconv.FormatFloat(entry.Calories, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	filename := fmt.Sprintf("food-logs-%s.csv", time.Now().In(handler.location).Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(output.Bytes())
}
