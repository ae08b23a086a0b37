package services

import (
	"math"
	"strings"
)

// DefaultCaloriesPer100g is the estimate used for food items the catalog
// has never heard of. Logging must not fail on an unknown dish.
const DefaultCaloriesPer100g = 150.0

// caloriesPer100g maps lowercase food names to kcal per 100 grams. Values
// are everyday estimates, matching the coarse granularity of the product.
var caloriesPer100g = map[string]float64{
	"apple":     52,
	"banana":    89,
	"orange":    47,
	"mango":     60,
	"rice":      130,
	"dal":       116,
	"roti":      264,
	"bread":     265,
	"egg":       155,
	"chicken":   239,
	"fish":      206,
	"paneer":    265,
	"milk":      61,
	"curd":      98,
	"yogurt":    59,
	"potato":    77,
	"salad":     20,
	"oats":      389,
	"pasta":     131,
	"pizza":     266,
	"burger":    295,
	"samosa":    262,
	"idli":      132,
	"dosa":      168,
	"poha":      110,
	"nuts":      607,
	"chocolate": 546,
	"ice cream": 207,
	"juice":     45,
	"tea":       30,
	"coffee":    40,
}

type CalorieCatalog struct {
	perHundredGrams map[string]float64
}

func NewCalorieCatalog() *CalorieCatalog {
	return &CalorieCatalog{perHundredGrams: caloriesPer100g}
}

// CaloriesFor estimates whole-kcal calories for grams of a food item,
// case-insensitively. Unknown items use DefaultCaloriesPer100g.
func (catalog *CalorieCatalog) CaloriesFor(foodItem string, grams float64) float64 {
	perHundred, known := catalog.perHundredGrams[strings.ToLower(strings.TrimSpace(foodItem))]
	if !known {
		perHundred = DefaultCaloriesPer100g
	}
	return math.Round(perHundred * grams / 100)
}
