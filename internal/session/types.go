package session

import (
	"time"

	"whatsapp-bridge/internal/model"
)

// Session is a snapshot of one identity's conversation state.
type Session struct {
	Identity     string
	Messages     []model.Message
	SearchCache  []model.Listing
	LastActivity time.Time
}

// Config holds the store limits. Zero values pick the defaults.
type Config struct {
	TTL        time.Duration
	MaxHistory int
	Now        func() time.Time
}

const (
	DefaultTTL        = 30 * time.Minute
	DefaultMaxHistory = 20
)
