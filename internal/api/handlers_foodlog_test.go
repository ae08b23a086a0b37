package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/models"
	"github.com/gofiber/fiber/v2"
)

func addTestMeal(t *testing.T, app *fiber.App, token string, foodItem string, grams float64, mealType string) models.FoodLog {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/foodlog/add", map[string]any{
		"foodItem": foodItem,
		"grams":    grams,
		"mealType": mealType,
	}, token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("add meal failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("add meal status = %d: %s", response.StatusCode, readBody(t, response.Body))
	}

	entry := models.FoodLog{}
	decodeJSONBody(t, response.Body, &entry)
	return entry
}

func TestAddFoodLogComputesCalories(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	token := registerTestUser(t, app, "Asha", "foodlog-add@example.com")

	entry := addTestMeal(t, app, token, "Rice", 150, models.MealLunch)
	if entry.Calories != 195 {
		t.Fatalf("calories = %v, want 195", entry.Calories)
	}
	if entry.FoodItem != "rice" {
		t.Fatalf("food item = %q, want %q", entry.FoodItem, "rice")
	}
	if entry.LogUID == "" {
		t.Fatal("expected an opaque identifier")
	}
}

func TestAddFoodLogValidation(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	token := registerTestUser(t, app, "Asha", "foodlog-validation@example.com")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing food item", payload: map[string]any{"grams": 100, "mealType": models.MealLunch}},
		{name: "zero grams", payload: map[string]any{"foodItem": "rice", "grams": 0, "mealType": models.MealLunch}},
		{name: "unknown meal type", payload: map[string]any{"foodItem": "rice", "grams": 100, "mealType": "Brunch"}},
	}

	for _, test := range tests {
		request := jsonRequest(t, http.MethodPost, "/api/foodlog/add", test.payload, token)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("%s: request failed: %v", test.name, err)
		}
		response.Body.Close()
		if response.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: status = %d, want %d", test.name, response.StatusCode, fiber.StatusBadRequest)
		}
	}
}

func TestGetFoodLogsOwnershipAndOrder(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	token := registerTestUser(t, app, "Asha", "foodlog-list@example.com")
	addTestMeal(t, app, token, "oats", 50, models.MealBreakfast)
	addTestMeal(t, app, token, "rice", 150, models.MealLunch)

	var userID uint
	{
		request := jsonRequest(t, http.MethodPost, "/api/foodlog/add", map[string]any{
			"foodItem": "dal", "grams": 100, "mealType": models.MealDinner,
		}, token)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("add meal failed: %v", err)
		}
		entry := models.FoodLog{}
		decodeJSONBody(t, response.Body, &entry)
		response.Body.Close()
		userID = entry.UserID
	}

	listRequest := jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/foodlog/%d", userID), nil, token)
	listResponse, err := app.Test(listRequest, -1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	defer listResponse.Body.Close()

	if listResponse.StatusCode != fiber.StatusOK {
		t.Fatalf("list status = %d", listResponse.StatusCode)
	}

	var payload struct {
		Data []models.FoodLog `json:"data"`
	}
	decodeJSONBody(t, listResponse.Body, &payload)
	if len(payload.Data) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(payload.Data))
	}

	// Another user's history is invisible.
	foreignRequest := jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/foodlog/%d", userID+1), nil, token)
	foreignResponse, err := app.Test(foreignRequest, -1)
	if err != nil {
		t.Fatalf("foreign list failed: %v", err)
	}
	defer foreignResponse.Body.Close()

	if foreignResponse.StatusCode != fiber.StatusNotFound {
		t.Fatalf("foreign list status = %d, want %d", foreignResponse.StatusCode, fiber.StatusNotFound)
	}
}

func TestDeleteFoodLog(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	token := registerTestUser(t, app, "Asha", "foodlog-delete@example.com")
	entry := addTestMeal(t, app, token, "rice", 150, models.MealLunch)

	deleteRequest := jsonRequest(t, http.MethodDelete, "/api/foodlog/"+entry.LogUID, nil, token)
	deleteResponse, err := app.Test(deleteRequest, -1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	defer deleteResponse.Body.Close()

	if deleteResponse.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d", deleteResponse.StatusCode)
	}

	// A second delete reports not found.
	repeatRequest := jsonRequest(t, http.MethodDelete, "/api/foodlog/"+entry.LogUID, nil, token)
	repeatResponse, err := app.Test(repeatRequest, -1)
	if err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
	defer repeatResponse.Body.Close()

	if repeatResponse.StatusCode != fiber.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want %d", repeatResponse.StatusCode, fiber.StatusNotFound)
	}
}

func TestDeleteFoodLogOfAnotherUser(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t)
	ownerToken := registerTestUser(t, app, "Asha", "foodlog-owner@example.com")
	entry := addTestMeal(t, app, ownerToken, "rice", 150, models.MealLunch)

	otherToken := registerTestUser(t, app, "Ravi", "foodlog-other@example.com")
	request := jsonRequest(t, http.MethodDelete, "/api/foodlog/"+entry.LogUID, nil, otherToken)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want %d", response.StatusCode, fiber.StatusNotFound)
	}
}
