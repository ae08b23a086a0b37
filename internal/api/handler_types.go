package api

import (
	"time"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/db"
	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	assistant    services.AssistantSender
	loginLimiter *attemptLimiter

	repositories   *db.Repositories
	authService    *services.AuthService
	foodLogService *services.FoodLogService
	waterService   *services.WaterService
	chatService    *services.ChatService
}

type credentialsInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type profileInput struct {
	Name   string  `json:"name" form:"name"`
	Age    int     `json:"age" form:"age"`
	Height float64 `json:"height" form:"height"`
	Weight float64 `json:"weight" form:"weight"`
	Gender string  `json:"gender" form:"gender"`
	Goal   string  `json:"goal" form:"goal"`
}

type mealInput struct {
	FoodItem string  `json:"foodItem" form:"foodItem"`
	Grams    float64 `json:"grams" form:"grams"`
	MealType string  `json:"mealType" form:"mealType"`
}

type waterInput struct {
	Milliliters int `json:"milliliters" form:"milliliters"`
}

type chatInput struct {
	Message string `json:"message" form:"message"`
}

const (
	defaultAuthTokenTTL = 7 * 24 * time.Hour

	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
