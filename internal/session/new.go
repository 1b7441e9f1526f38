package session

import (
	"sync"
	"time"
)

type entry struct {
	turn sync.Mutex // held for a whole orchestrated turn
	mu   sync.Mutex // guards state
	refs int        // guarded by implStore.mu

	state Session
}

type implStore struct {
	mu      sync.Mutex
	entries map[string]*entry

	ttl        time.Duration
	maxHistory int
	now        func() time.Time
}

var _ Store = (*implStore)(nil)

// New creates an empty Store.
func New(cfg Config) Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implStore{
		entries:    make(map[string]*entry),
		ttl:        cfg.TTL,
		maxHistory: cfg.MaxHistory,
		now:        cfg.Now,
	}
}
