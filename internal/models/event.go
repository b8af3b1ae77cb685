package models

// Login outcomes published with LoginEvent.
const (
	LoginSucceeded          = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginUnknownAdmin       = "unknown_admin"
)

// LoginEvent is published to Kafka after every login attempt.
type LoginEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	AdminID   string `json:"admin_id,omitempty"`
	Username  string `json:"username"`
	Outcome   string `json:"outcome"`
}
