package entities

import (
	"time"

	"raidcrew/raidtracker/internal/constants"
)

// LoginAttempt is the state of one delegated login, scoped to the client that started it.
// It holds the placeholder request token pair until the callback consumes it.
type LoginAttempt struct {
	ClientID           string                 `json:"client_id"`
	RequestToken       string                 `json:"request_token"`
	RequestTokenSecret string                 `json:"request_token_secret"`
	State              constants.AttemptState `json:"state"`
	CallbackURL        string                 `json:"callback_url,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	ExpiresAt          time.Time              `json:"expires_at"`
}
