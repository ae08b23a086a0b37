package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/assistant"
	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
	"github.com/gofiber/fiber/v2"
)

type stubSender struct {
	payload assistant.ChatRequest
	reply   string
	err     error
}

func (sender *stubSender) SendMessage(ctx context.Context, payload assistant.ChatRequest) (string, error) {
	sender.payload = payload
	return sender.reply, sender.err
}

func TestChatForwardsContext(t *testing.T) {
	t.Parallel()

	sender := &stubSender{reply: "Add more protein to lunch."}
	app, _, _ := newTestAppWithSender(t, sender)
	token := registerTestUser(t, app, "Asha", "chat@example.com")
	addTestMeal(t, app, token, "rice", 150, models.MealLunch)

	request := jsonRequest(t, http.MethodPost, "/api/ai/chat", map[string]string{
		"message": "How is my diet?",
	}, token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("chat status = %d: %s", response.StatusCode, readBody(t, response.Body))
	}

	var payload struct {
		Response string `json:"response"`
	}
	decodeJSONBody(t, response.Body, &payload)
	if payload.Response != "Add more protein to lunch." {
		t.Fatalf("response = %q", payload.Response)
	}

	if sender.payload.Message != "How is my diet?" {
		t.Fatalf("forwarded message = %q", sender.payload.Message)
	}
	if sender.payload.UserProfile.Name != "Asha" {
		t.Fatalf("forwarded profile = %+v", sender.payload.UserProfile)
	}
	if len(sender.payload.RecentFoodLogs) != 1 || sender.payload.RecentFoodLogs[0].FoodItem != "rice" {
		t.Fatalf("forwarded food logs = %+v", sender.payload.RecentFoodLogs)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestAppWithSender(t, &stubSender{reply: "ok"})
	token := registerTestUser(t, app, "Asha", "chat-empty@example.com")

	request := jsonRequest(t, http.MethodPost, "/api/ai/chat", map[string]string{"message": "   "}, token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", response.StatusCode, fiber.StatusBadRequest)
	}
}

func TestChatAssistantFailure(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestAppWithSender(t, &stubSender{err: errors.New("connection refused")})
	token := registerTestUser(t, app, "Asha", "chat-down@example.com")

	request := jsonRequest(t, http.MethodPost, "/api/ai/chat", map[string]string{"message": "hello"}, token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("status = %d, want %d", response.StatusCode, fiber.StatusBadGateway)
	}
}

func TestChatUnconfigured(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	token := registerTestUser(t, app, "Asha", "chat-unconfigured@example.com")

	request := jsonRequest(t, http.MethodPost, "/api/ai/chat", map[string]string{"message": "hello"}, token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", response.StatusCode, fiber.StatusServiceUnavailable)
	}
}
