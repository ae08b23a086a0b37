// Package assistant talks to the remote health-assistant endpoint. The
// endpoint receives the user's question plus a small profile and food-log
// context and answers with free text.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrEmptyReply = errors.New("assistant returned an empty reply")

const defaultTimeout = 30 * time.Second

// ChatRequest is the wire payload the assistant endpoint expects.
type ChatRequest struct {
	Message        string           `json:"message"`
	UserID         string           `json:"userId"`
	UserProfile    ProfileContext   `json:"userProfile"`
	RecentFoodLogs []FoodLogContext `json:"recentFoodLogs"`
}

type ProfileContext struct {
	Name     string  `json:"name"`
	WeightKg float64 `json:"weight"`
	HeightCm float64 `json:"height"`
	Goal     string  `json:"goal"`
}

type FoodLogContext struct {
	FoodItem string    `json:"foodItem"`
	Grams    float64   `json:"grams"`
	MealType string    `json:"mealType"`
	Calories float64   `json:"calories"`
	Date     time.Time `json:"date"`
}

type chatResponse struct {
	Response string `json:"response"`
	Message  string `json:"message"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (client *Client) SendMessage(ctx context.Context, payload ChatRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	parsed := chatResponse{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		if parsed.Message != "" {
			return "", fmt.Errorf("assistant rejected request: %s", parsed.Message)
		}
		return "", fmt.Errorf("assistant responded with status %d", response.StatusCode)
	}
	if parsed.Response == "" {
		return "", ErrEmptyReply
	}
	return parsed.Response, nil
}
