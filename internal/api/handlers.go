package api

import (
	"time"

	"github.com/Sheefhuss/Frontend-heath-tracker/internal/services"
	"gorm.io/gorm"
)

// NewHandler wires the HTTP surface. The assistant sender is optional:
// without one the chat endpoint reports itself as unconfigured instead of
// failing requests elsewhere.
func NewHandler(database *gorm.DB, secret string, location *time.Location, sender services.AssistantSender, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	return &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		assistant:    sender,
		loginLimiter: newAttemptLimiter(),
	}
}
