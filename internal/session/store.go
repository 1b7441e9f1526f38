package session

import (
	"time"

	"whatsapp-bridge/internal/model"
)

// acquire pins the identity's entry, creating it if missing. A pinned entry is
// never removed by SweepExpired.
func (s *implStore) acquire(identity string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[identity]
	if !ok {
		e = &entry{state: Session{Identity: identity, LastActivity: s.now()}}
		s.entries[identity] = e
	}
	e.refs++
	return e
}

func (s *implStore) release(e *entry) {
	s.mu.Lock()
	e.refs--
	s.mu.Unlock()
}

func (s *implStore) GetOrCreate(identity string) Session {
	e := s.acquire(identity)
	defer s.release(e)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.LastActivity = s.now()
	return e.state.snapshot()
}

func (s *implStore) Append(identity string, msg model.Message) {
	e := s.acquire(identity)
	defer s.release(e)

	e.mu.Lock()
	defer e.mu.Unlock()

	msgs := append(e.state.Messages, msg)
	if over := len(msgs) - s.maxHistory; over > 0 {
		// Copy so the dropped prefix can be collected.
		msgs = append([]model.Message(nil), msgs[over:]...)
	}
	e.state.Messages = msgs
	e.state.LastActivity = s.now()
}

func (s *implStore) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for identity, e := range s.entries {
		if e.refs > 0 {
			continue
		}
		e.mu.Lock()
		idle := now.Sub(e.state.LastActivity)
		e.mu.Unlock()
		if idle > s.ttl {
			delete(s.entries, identity)
			removed++
		}
	}
	return removed
}

func (s *implStore) Lock(identity string) func() {
	e := s.acquire(identity)
	e.turn.Lock()
	return func() {
		e.turn.Unlock()
		s.release(e)
	}
}

func (s *implStore) Peek(identity string) (Session, bool) {
	s.mu.Lock()
	e, ok := s.entries[identity]
	s.mu.Unlock()
	if !ok {
		return Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.snapshot(), true
}

func (s *implStore) Clear(identity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[identity]
	if !ok {
		return false
	}
	if e.refs > 0 {
		// A turn is in flight; empty it instead of orphaning the entry.
		e.mu.Lock()
		e.state.Messages = nil
		e.state.SearchCache = nil
		e.mu.Unlock()
		return true
	}
	delete(s.entries, identity)
	return true
}

func (s *implStore) SetSearchCache(identity string, results []model.Listing) {
	e := s.acquire(identity)
	defer s.release(e)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.SearchCache = append([]model.Listing(nil), results...)
	e.state.LastActivity = s.now()
}

func (s *implStore) SearchCache(identity string) []model.Listing {
	sess, ok := s.Peek(identity)
	if !ok || len(sess.SearchCache) == 0 {
		return nil
	}
	return sess.SearchCache
}

func (s *implStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *implStore) Now() time.Time { return s.now() }

func (st Session) snapshot() Session {
	out := st
	out.Messages = append([]model.Message(nil), st.Messages...)
	if st.SearchCache != nil {
		out.SearchCache = append([]model.Listing(nil), st.SearchCache...)
	}
	return out
}
