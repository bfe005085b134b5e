package events

import (
	"time"

	"github.com/spec-kit/translate-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventUserLoggedIn         EventType = "user_logged_in"
	EventTranslationCompleted EventType = "translation_completed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TranslationCompletedPayload payload.
type TranslationCompletedPayload struct {
	TranslationID int64            `json:"translation_id"`
	Direction     domain.Direction `json:"direction"`
	TextPreview   string           `json:"text_preview"`
	Cached        bool             `json:"cached"`
}
