package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	FoodLogs *FoodLogRepository
	Water    *WaterIntakeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		FoodLogs: NewFoodLogRepository(database),
		Water:    NewWaterIntakeRepository(database),
	}
}
