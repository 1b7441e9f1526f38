package agentbackend

import (
	"errors"
	"time"
)

const (
	runPath        = "/agent/run"
	defaultTimeout = 120 * time.Second
)

var (
	ErrNotConfigured = errors.New("agent backend url not configured")
	ErrTimeout       = errors.New("agent backend timeout")
	ErrStatus        = errors.New("agent backend returned an error status")
	ErrUnsuccessful  = errors.New("agent backend reported failure")
	ErrEmptyResponse = errors.New("agent backend returned an empty response")
)

// HistoryMessage is one prior turn sent to the backend.
type HistoryMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// RunRequest is the body of POST /agent/run.
type RunRequest struct {
	UserID              string           `json:"user_id"`
	Message             string           `json:"message"`
	ConversationHistory []HistoryMessage `json:"conversation_history"`
	MediaPaths          []string         `json:"media_paths"`
	MediaType           *string          `json:"media_type"`
	DraftListingID      *string          `json:"draft_listing_id"`
}

// RunResponse is the reply of POST /agent/run.
type RunResponse struct {
	Response       string `json:"response"`
	Intent         string `json:"intent"`
	Success        bool   `json:"success"`
	DraftListingID string `json:"draft_listing_id,omitempty"`
}
