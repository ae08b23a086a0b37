package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/db"
	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()
	return newTestAppWithSender(t, nil)
}

func newTestAppWithSender(t *testing.T, sender services.AssistantSender) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "healthtracker-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret", time.UTC, sender, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler, database
}

func jsonRequest(t *testing.T, method string, path string, payload any, authCookie string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.AddCookie(&http.Cookie{Name: authCookieName, Value: authCookie})
	}
	return request
}

// registerTestUser signs up a fresh account through the public endpoint and
// returns the session token from the auth cookie.
func registerTestUser(t *testing.T, app *fiber.App, name string, email string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	}, "")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d, want %d", response.StatusCode, fiber.StatusCreated)
	}

	token := responseCookieValue(response.Cookies(), authCookieName)
	if token == "" {
		t.Fatal("register response is missing the auth cookie")
	}
	return token
}

func saveTestProfile(t *testing.T, app *fiber.App, token string, payload map[string]any) {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/profile/save", payload, token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("save profile failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("save profile status = %d: %s", response.StatusCode, readBody(t, response.Body))
	}
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func readBody(t *testing.T, body io.Reader) string {
	t.Helper()

	content, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(content)
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	if err := json.Unmarshal([]byte(readBody(t, body)), &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	if err := json.Unmarshal([]byte(readBody(t, body)), target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
