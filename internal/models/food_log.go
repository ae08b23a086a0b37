package models

import "time"

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// FoodLog is one logged meal. LogUID is the opaque identifier handed to
// clients; deletion goes through it rather than the numeric key. Date keeps
// the time of day — daily bucketing discards it at aggregation time, the
// meal-detail view does not.
type FoodLog struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	LogUID    string    `gorm:"uniqueIndex;not null" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	FoodItem  string    `gorm:"not null" json:"foodItem"`
	Grams     float64   `gorm:"not null" json:"grams"`
	MealType  string    `gorm:"not null" json:"mealType"`
	Calories  float64   `gorm:"not null;default:0" json:"calories"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	CreatedAt time.Time `json:"-"`
}

func ValidMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}
