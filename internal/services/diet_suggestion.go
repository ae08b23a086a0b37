package services

import "github.com/Sheefhuss/Frontend-heath-tracker/internal/models"

var dietSuggestions = map[string]string{
	models.GoalLoseWeight:     "Focus on Calorie Deficit: High protein, high fiber, low simple carbs. Eat plenty of non-starchy vegetables, lean protein (chicken/fish/paneer), and stay hydrated. Avoid sugary drinks.",
	models.GoalGainWeight:     "Focus on Calorie Surplus: Eat 5-6 meals a day. Include calorie-dense foods like rice, potatoes, nuts/seeds, dairy, and constant high-quality protein for muscle repair.",
	models.GoalMaintainWeight: "Focus on Balance: Eat close to your TDEE. Include whole grains, lean protein, and all food groups. Limit processed snacks and prioritize home-cooked meals.",
}

const dietSuggestionFallback = "Eat a balanced diet with lots of fruits and vegetables."

func DietSuggestion(goal string) string {
	if suggestion, found := dietSuggestions[goal]; found {
		return suggestion
	}
	return dietSuggestionFallback
}
