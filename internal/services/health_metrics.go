package services

import (
	"math"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
)

const (
	// DefaultActivityMultiplier assumes a low activity level; the profile
	// form has no activity-level field, so every user gets 1.2.
	DefaultActivityMultiplier = 1.2
	WaterLitersPerKg          = 0.033
	GlassSizeMl               = 250
)

const (
	BMICategoryUnderweight = "Underweight"
	BMICategoryHealthy     = "Healthy Weight"
	BMICategoryOverweight  = "Overweight"
	BMICategoryObese       = "Obese"
	BMICategoryUnknown     = "N/A"
)

// HealthMetrics holds the derived dashboard numbers at full precision.
// Each value pairs with a Valid flag; rounding and "N/A" rendering happen
// at the API boundary, never here, so chained formulas (BMR -> TDEE ->
// calorie goal) do not compound rounding error.
type HealthMetrics struct {
	BMI         float64
	BMIValid    bool
	BMICategory string

	BMR       float64
	BMRValid  bool
	TDEE      float64
	TDEEValid bool

	CalorieGoal      float64
	CalorieGoalValid bool

	WaterGoalLiters float64
	WaterGoalValid  bool
}

func BuildHealthMetrics(user models.User) HealthMetrics {
	metrics := HealthMetrics{}

	metrics.BMI, metrics.BMIValid = ComputeBMI(user.HeightCm, user.WeightKg)
	metrics.BMICategory = BMICategory(metrics.BMI, metrics.BMIValid)

	metrics.BMR, metrics.BMRValid = ComputeBMR(user.WeightKg, user.HeightCm, user.Age, user.Gender)
	metrics.TDEE, metrics.TDEEValid = ComputeTDEE(metrics.BMR, metrics.BMRValid, DefaultActivityMultiplier)
	metrics.CalorieGoal, metrics.CalorieGoalValid = ComputeCalorieGoal(metrics.TDEE, metrics.TDEEValid, user.Goal)

	metrics.WaterGoalLiters, metrics.WaterGoalValid = ComputeWaterGoalLiters(user.WeightKg)

	return metrics
}

// ComputeBMI returns weight / (height in meters)^2. Missing, zero, or
// non-finite input degrades to ok=false instead of an error.
func ComputeBMI(heightCm float64, weightKg float64) (float64, bool) {
	if !positiveFinite(heightCm) || !positiveFinite(weightKg) {
		return 0, false
	}
	heightMeters := heightCm / 100
	return weightKg / (heightMeters * heightMeters), true
}

// BMICategory partitions BMI into half-open bands: [0,18.5), [18.5,25),
// [25,30), [30,inf). Boundary values belong to the upper band.
func BMICategory(bmi float64, ok bool) string {
	if !ok || math.IsNaN(bmi) {
		return BMICategoryUnknown
	}
	switch {
	case bmi < 18.5:
		return BMICategoryUnderweight
	case bmi < 25:
		return BMICategoryHealthy
	case bmi < 30:
		return BMICategoryOverweight
	default:
		return BMICategoryObese
	}
}

// ComputeBMR uses Mifflin-St Jeor: 10w + 6.25h - 5a, +5 for male and -161
// otherwise.
func ComputeBMR(weightKg float64, heightCm float64, age int, gender string) (float64, bool) {
	if !positiveFinite(weightKg) || !positiveFinite(heightCm) || age <= 0 || gender == "" {
		return 0, false
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, true
}

func ComputeTDEE(bmr float64, ok bool, activityMultiplier float64) (float64, bool) {
	if !ok {
		return 0, false
	}
	if activityMultiplier <= 0 {
		activityMultiplier = DefaultActivityMultiplier
	}
	return bmr * activityMultiplier, true
}

func ComputeCalorieGoal(tdee float64, ok bool, goal string) (float64, bool) {
	if !ok {
		return 0, false
	}
	switch goal {
	case models.GoalLoseWeight:
		return tdee - 500, true
	case models.GoalGainWeight:
		return tdee * 1.15, true
	default:
		return tdee, true
	}
}

func ComputeWaterGoalLiters(weightKg float64) (float64, bool) {
	if !positiveFinite(weightKg) {
		return 0, false
	}
	return weightKg * WaterLitersPerKg, true
}

// GlassCount converts liters to full 250 ml glasses.
func GlassCount(liters float64) int {
	if !positiveFinite(liters) {
		return 0
	}
	return int(math.Floor(liters * 1000 / GlassSizeMl))
}

func positiveFinite(value float64) bool {
	return value > 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}
