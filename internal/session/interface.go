package session

import (
	"time"

	"whatsapp-bridge/internal/model"
)

// Store is the in-memory, per-identity conversation store.
type Store interface {
	// GetOrCreate returns the identity's session, creating an empty one if needed.
	// It always refreshes LastActivity.
	GetOrCreate(identity string) Session
	// Append adds msg, keeps the newest MaxHistory messages and refreshes LastActivity.
	Append(identity string, msg model.Message)
	// SweepExpired removes sessions idle for longer than the TTL and returns how many.
	SweepExpired(now time.Time) int

	// Lock serialises whole turns for one identity. The returned func releases it.
	Lock(identity string) (unlock func())
	// Peek returns the session without creating or touching it.
	Peek(identity string) (Session, bool)
	// Clear drops the identity's session. It reports whether one existed.
	Clear(identity string) bool
	// SetSearchCache replaces the identity's cached search results.
	SetSearchCache(identity string, results []model.Listing)
	// SearchCache returns the cached search results, nil when none.
	SearchCache(identity string) []model.Listing
	// Len returns the number of resident sessions.
	Len() int
	// Now reads the store's clock. Sweeps should be driven by it.
	Now() time.Time
}
