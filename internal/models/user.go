package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	GoalLoseWeight     = "Lose Weight"
	GoalGainWeight     = "Gain Weight"
	GoalMaintainWeight = "Maintain Weight"
)

// User carries both the account credentials and the health profile. The
// profile fields stay zero until the user saves them; metric computation
// treats zero as "not provided".
type User struct {
	ID           uint   `gorm:"primaryKey" json:"userId"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Age      int     `gorm:"not null;default:0" json:"age"`
	HeightCm float64 `gorm:"not null;default:0" json:"height"`
	WeightKg float64 `gorm:"not null;default:0" json:"weight"`
	Gender   string  `gorm:"not null;default:female" json:"gender"`
	Goal     string  `gorm:"not null;default:Maintain Weight" json:"goal"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func ValidGoal(goal string) bool {
	switch goal {
	case GoalLoseWeight, GoalGainWeight, GoalMaintainWeight:
		return true
	default:
		return false
	}
}

func ValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}
