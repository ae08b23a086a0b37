package api

import (
	"github.com/Sheefhuss/Frontend-heath-tracker/internal/db"
	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.foodLogService == nil {
		handler.foodLogService = services.NewFoodLogService(handler.repositories.FoodLogs)
	}
	if handler.waterService == nil {
		handler.waterService = services.NewWaterService(handler.repositories.Water)
	}
	if handler.chatService == nil && handler.assistant != nil {
		handler.chatService = services.NewChatService(handler.assistant, handler.repositories.FoodLogs)
	}
}
