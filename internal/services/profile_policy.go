package services

import (
	"errors"
	"strings"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
)

var (
	ErrProfileNameRequired  = errors.New("name is required")
	ErrProfileInvalidAge    = errors.New("age must be between 10 and 120")
	ErrProfileInvalidHeight = errors.New("height must be between 50 and 250 cm")
	ErrProfileInvalidWeight = errors.New("weight must be between 20 and 400 kg")
	ErrProfileUnknownGender = errors.New("unknown gender")
	ErrProfileUnknownGoal   = errors.New("unknown fitness goal")
)

type ProfileInput struct {
	Name     string
	Age      int
	HeightCm float64
	WeightKg float64
	Gender   string
	Goal     string
}

// ValidateProfileInput enforces the profile form's plausibility bounds.
// Values outside these ranges would only produce garbage metrics
// downstream.
func ValidateProfileInput(input ProfileInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrProfileNameRequired
	}
	if input.Age < 10 || input.Age > 120 {
		return ErrProfileInvalidAge
	}
	if input.HeightCm < 50 || input.HeightCm > 250 {
		return ErrProfileInvalidHeight
	}
	if input.WeightKg < 20 || input.WeightKg > 400 {
		return ErrProfileInvalidWeight
	}
	if !models.ValidGender(input.Gender) {
		return ErrProfileUnknownGender
	}
	if !models.ValidGoal(input.Goal) {
		return ErrProfileUnknownGoal
	}
	return nil
}
