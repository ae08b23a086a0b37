package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
	"github.com/google/uuid"
)

var (
	ErrFoodItemRequired = errors.New("food item is required")
	ErrInvalidGrams     = errors.New("grams must be a positive amount")
	ErrUnknownMealType  = errors.New("unknown meal type")
	ErrLogNotFound      = errors.New("food log not found")
)

type FoodLogStore interface {
	ListByUser(userID uint) ([]models.FoodLog, error)
	ListRecentByUser(userID uint, limit int) ([]models.FoodLog, error)
	FindByUID(logUID string) (models.FoodLog, bool, error)
	Create(entry *models.FoodLog) error
	DeleteByUID(logUID string) error
}

type MealInput struct {
	FoodItem string
	Grams    float64
	MealType string
}

type FoodLogService struct {
	logs    FoodLogStore
	catalog *CalorieCatalog
	clock   func() time.Time
}

func NewFoodLogService(logs FoodLogStore) *FoodLogService {
	return &FoodLogService{
		logs:    logs,
		catalog: NewCalorieCatalog(),
		clock:   time.Now,
	}
}

// LogMeal validates the input, computes calories server-side, and stores
// the entry stamped with the current instant. The returned entry carries
// the opaque identifier later used for deletion.
func (service *FoodLogService) LogMeal(userID uint, input MealInput) (models.FoodLog, error) {
	foodItem := strings.ToLower(strings.TrimSpace(input.FoodItem))
	if foodItem == "" {
		return models.FoodLog{}, ErrFoodItemRequired
	}
	if input.Grams <= 0 || math.IsNaN(input.Grams) || math.IsInf(input.Grams, 0) {
		return models.FoodLog{}, ErrInvalidGrams
	}
	if !models.ValidMealType(input.MealType) {
		return models.FoodLog{}, ErrUnknownMealType
	}

	entry := models.FoodLog{
		LogUID:   uuid.NewString(),
		UserID:   userID,
		FoodItem: foodItem,
		Grams:    input.Grams,
		MealType: input.MealType,
		Calories: service.catalog.CaloriesFor(foodItem, input.Grams),
		Date:     service.clock(),
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.FoodLog{}, err
	}
	return entry, nil
}

func (service *FoodLogService) History(userID uint) ([]models.FoodLog, error) {
	return service.logs.ListByUser(userID)
}

func (service *FoodLogService) Recent(userID uint, limit int) ([]models.FoodLog, error) {
	return service.logs.ListRecentByUser(userID, limit)
}

// DeleteLog removes a single entry by its opaque identifier. Entries owned
// by other users are reported as not found rather than as forbidden, so
// the identifier space leaks nothing.
func (service *FoodLogService) DeleteLog(userID uint, logUID string) (models.FoodLog, error) {
	entry, found, err := service.logs.FindByUID(strings.TrimSpace(logUID))
	if err != nil {
		return models.FoodLog{}, err
	}
	if !found || entry.UserID != userID {
		return models.FoodLog{}, ErrLogNotFound
	}
	if err := service.logs.DeleteByUID(entry.LogUID); err != nil {
		return models.FoodLog{}, err
	}
	return entry, nil
}
