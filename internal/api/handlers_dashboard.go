package api

import (
	"time"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetDashboard assembles everything the dashboard screen renders in one
// round trip: formatted health metrics, daily calorie buckets, summary
// stats, the scaled trend chart, water progress, and a diet suggestion.
// An optional tz query parameter shifts day bucketing to the viewer's
// timezone; unparseable names fall back to the server location.
func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	location := handler.location
	if name := c.Query("tz"); name != "" {
		if parsed, err := time.LoadLocation(name); err == nil {
			location = parsed
		}
	}

	handler.ensureDependencies()
	logs, err := handler.foodLogService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load food logs")
	}

	metrics := services.BuildHealthMetrics(*user)
	buckets := services.AggregateDaily(logs, location)
	stats := services.Summarize(buckets)
	chart := services.BuildChartScale(buckets, metrics.CalorieGoal, metrics.CalorieGoalValid)

	waterMl, err := handler.waterService.Intake(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load water intake")
	}

	waterGoalGlasses := 0
	if metrics.WaterGoalValid {
		waterGoalGlasses = services.GlassCount(metrics.WaterGoalLiters)
	}

	return c.JSON(fiber.Map{
		"metrics": fiber.Map{
			"bmi":             formatMetric(metrics.BMI, metrics.BMIValid, 1),
			"bmiCategory":     metrics.BMICategory,
			"bmr":             formatMetric(metrics.BMR, metrics.BMRValid, 0),
			"tdee":            formatMetric(metrics.TDEE, metrics.TDEEValid, 0),
			"calorieGoal":     formatMetric(metrics.CalorieGoal, metrics.CalorieGoalValid, 0),
			"waterGoalLiters": formatMetric(metrics.WaterGoalLiters, metrics.WaterGoalValid, 2),
		},
		"stats": fiber.Map{
			"averageCalories": stats.AverageCalories,
			"maxCalories":     stats.MaxCalories,
			"dayCount":        stats.DayCount,
		},
		"days":  buckets,
		"chart": chart,
		"water": fiber.Map{
			"milliliters": waterMl,
			"glasses":     waterMl / services.GlassSizeMl,
			"goalGlasses": waterGoalGlasses,
			"goalReached": metrics.WaterGoalValid && waterGoalGlasses > 0 && waterMl/services.GlassSizeMl >= waterGoalGlasses,
		},
		"dietSuggestion": services.DietSuggestion(user.Goal),
	})
}
