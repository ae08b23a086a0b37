package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/assistant"
	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
)

var ErrEmptyChatMessage = errors.New("chat message is empty")

// recentLogContextLimit caps how much food history rides along with a chat
// message; the assistant only needs the latest few meals.
const recentLogContextLimit = 5

type AssistantSender interface {
	SendMessage(ctx context.Context, payload assistant.ChatRequest) (string, error)
}

type RecentLogReader interface {
	ListRecentByUser(userID uint, limit int) ([]models.FoodLog, error)
}

type ChatService struct {
	sender AssistantSender
	logs   RecentLogReader
}

func NewChatService(sender AssistantSender, logs RecentLogReader) *ChatService {
	return &ChatService{sender: sender, logs: logs}
}

// Ask forwards a free-text question together with a profile subset and the
// most recent meals. A failed history fetch degrades to an empty context
// rather than blocking the question.
func (service *ChatService) Ask(ctx context.Context, user models.User, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyChatMessage
	}

	recent, err := service.logs.ListRecentByUser(user.ID, recentLogContextLimit)
	if err != nil {
		recent = nil
	}

	payload := assistant.ChatRequest{
		Message: message,
		UserID:  strconv.FormatUint(uint64(user.ID), 10),
		UserProfile: assistant.ProfileContext{
			Name:     user.Name,
			WeightKg: user.WeightKg,
			HeightCm: user.HeightCm,
			Goal:     user.Goal,
		},
		RecentFoodLogs: make([]assistant.FoodLogContext, 0, len(recent)),
	}
	for _, entry := range recent {
		payload.RecentFoodLogs = append(payload.RecentFoodLogs, assistant.FoodLogContext{
			FoodItem: entry.FoodItem,
			Grams:    entry.Grams,
			MealType: entry.MealType,
			Calories: entry.Calories,
			Date:     entry.Date,
		})
	}

	return service.sender.SendMessage(ctx, payload)
}
