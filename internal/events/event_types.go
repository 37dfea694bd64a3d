package events

import (
	"time"

	"github.com/ndis-platform/admin-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoggedIn       EventType = "logged_in"
	EventLoggedOut      EventType = "logged_out"
	EventSessionExpired EventType = "session_expired"
)

// Event represents a session lifecycle change for one browser context.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LoggedInPayload payload.
type LoggedInPayload struct {
	User *domain.Identity `json:"user,omitempty"`
}

// SessionExpiredPayload payload.
type SessionExpiredPayload struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	// Cleared is false when the 401 answered a request sent with a token that
	// had already been replaced.
	Cleared bool `json:"cleared"`
}
