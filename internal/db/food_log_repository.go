package db

import (
	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
	"gorm.io/gorm"
)

type FoodLogRepository struct {
	database *gorm.DB
}

func NewFoodLogRepository(database *gorm.DB) *FoodLogRepository {
	return &FoodLogRepository{database: database}
}

// ListByUser returns the full log history, newest entry first. The daily
// aggregation layer relies on this ordering so that buckets come out with
// the most recent meal leading its day.
func (repo *FoodLogRepository) ListByUser(userID uint) ([]models.FoodLog, error) {
	logs := make([]models.FoodLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *FoodLogRepository) ListRecentByUser(userID uint, limit int) ([]models.FoodLog, error) {
	logs := make([]models.FoodLog, 0)
	query := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *FoodLogRepository) FindByUID(logUID string) (models.FoodLog, bool, error) {
	entry := models.FoodLog{}
	result := repo.database.Where("log_uid = ?", logUID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.FoodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FoodLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *FoodLogRepository) Create(entry *models.FoodLog) error {
	return repo.database.Create(entry).Error
}

func (repo *FoodLogRepository) DeleteByUID(logUID string) error {
	return repo.database.Where("log_uid = ?", logUID).Delete(&models.FoodLog{}).Error
}
