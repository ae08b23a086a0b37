package db

import (
	"time"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WaterIntakeRepository is the key-value store behind the water counter:
// one milliliter total per user, read with Get, replaced with Set.
type WaterIntakeRepository struct {
	database *gorm.DB
}

func NewWaterIntakeRepository(database *gorm.DB) *WaterIntakeRepository {
	return &WaterIntakeRepository{database: database}
}

func (repo *WaterIntakeRepository) Get(userID uint) (int, error) {
	entry := models.WaterIntake{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&entry)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, nil
	}
	return entry.Milliliters, nil
}

func (repo *WaterIntakeRepository) Set(userID uint, milliliters int) error {
	entry := models.WaterIntake{
		UserID:      userID,
		Milliliters: milliliters,
		UpdatedAt:   time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"milliliters", "updated_at"}),
	}).Create(&entry).Error
}
