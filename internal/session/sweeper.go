package session

import (
	"context"
	"time"

	pkgLog "whatsapp-bridge/pkg/log"
)

const logPrefixSweeper = "internal.session.Sweeper"

// Sweeper periodically removes expired sessions. It complements the
// opportunistic sweep done on every inbound message, so idle sessions are
// reclaimed even when no traffic arrives.
type Sweeper struct {
	store    Store
	interval time.Duration
	l        pkgLog.Logger
}

// NewSweeper creates a Sweeper. interval must be positive. Expiry is judged
// against the store's own clock.
func NewSweeper(store Store, interval time.Duration, l pkgLog.Logger) *Sweeper {
	return &Sweeper{store: store, interval: interval, l: l}
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.l.Infof(ctx, "%s: started with interval %s", logPrefixSweeper, s.interval)
	for {
		select {
		case <-ctx.Done():
			s.l.Infof(ctx, "%s: stopped", logPrefixSweeper)
			return
		case <-ticker.C:
			if removed := s.store.SweepExpired(s.store.Now()); removed > 0 {
				s.l.Infof(ctx, "%s: removed %d expired sessions, %d resident", logPrefixSweeper, removed, s.store.Len())
			}
		}
	}
}
