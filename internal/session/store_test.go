package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"whatsapp-bridge/internal/model"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(maxHistory int) (Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	return New(Config{TTL: 30 * time.Minute, MaxHistory: maxHistory, Now: clock.Now}), clock
}

func TestGetOrCreate(t *testing.T) {
	s, clock := newTestStore(20)

	first := s.GetOrCreate("+901")
	if first.Identity != "+901" || len(first.Messages) != 0 {
		t.Fatalf("unexpected new session: %+v", first)
	}

	s.Append("+901", model.Message{Role: model.RoleUser, Content: "merhaba"})
	clock.Advance(time.Minute)

	again := s.GetOrCreate("+901")
	if len(again.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(again.Messages))
	}
	if !again.LastActivity.Equal(clock.Now()) {
		t.Errorf("expected LastActivity to be refreshed")
	}
	if s.Len() != 1 {
		t.Errorf("expected one session, got %d", s.Len())
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s, _ := newTestStore(20)
	s.Append("a", model.Message{Role: model.RoleUser, Content: "1"})

	snap := s.GetOrCreate("a")
	snap.Messages[0].Content = "mutated"

	if got := s.GetOrCreate("a").Messages[0].Content; got != "1" {
		t.Errorf("store was mutated through snapshot: %q", got)
	}
}

func TestAppendKeepsMostRecent(t *testing.T) {
	s, _ := newTestStore(20)

	for i := 0; i < 45; i++ {
		s.Append("a", model.Message{Role: model.RoleUser, Content: fmt.Sprint(i)})
		if n := len(s.GetOrCreate("a").Messages); n > 20 {
			t.Fatalf("history grew to %d", n)
		}
	}

	msgs := s.GetOrCreate("a").Messages
	if len(msgs) != 20 {
		t.Fatalf("expected 20 messages, got %d", len(msgs))
	}
	for i, m := range msgs {
		if want := fmt.Sprint(25 + i); m.Content != want {
			t.Errorf("position %d: expected %s, got %s", i, want, m.Content)
		}
	}
}

func TestSweepExpired(t *testing.T) {
	s, clock := newTestStore(20)
	start := clock.Now()

	s.GetOrCreate("old")
	clock.Advance(10 * time.Minute)
	s.GetOrCreate("mid")
	clock.Advance(10 * time.Minute)
	s.GetOrCreate("new")

	t.Run("nothing expired at exactly ttl", func(t *testing.T) {
		if n := s.SweepExpired(start.Add(30 * time.Minute)); n != 0 {
			t.Errorf("expected 0 removed, got %d", n)
		}
	})

	t.Run("only sessions past ttl", func(t *testing.T) {
		n := s.SweepExpired(start.Add(41 * time.Minute))
		if n != 2 {
			t.Fatalf("expected 2 removed, got %d", n)
		}
		if _, ok := s.Peek("old"); ok {
			t.Error("old should be gone")
		}
		if _, ok := s.Peek("mid"); ok {
			t.Error("mid should be gone")
		}
		if _, ok := s.Peek("new"); !ok {
			t.Error("new should remain")
		}
	})

	t.Run("locked session survives", func(t *testing.T) {
		unlock := s.Lock("new")
		if n := s.SweepExpired(start.Add(5 * time.Hour)); n != 0 {
			t.Errorf("expected in-flight session to be kept, removed %d", n)
		}
		unlock()
		if n := s.SweepExpired(start.Add(5 * time.Hour)); n != 1 {
			t.Errorf("expected 1 removed after unlock, got %d", n)
		}
	})
}

func TestConcurrentAppendSameIdentity(t *testing.T) {
	s, _ := newTestStore(1000)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s.Append("A", model.Message{Role: model.RoleUser, Content: fmt.Sprintf("%d-%d", w, i)})
			}
		}(w)
	}
	wg.Wait()

	msgs := s.GetOrCreate("A").Messages
	if len(msgs) != 400 {
		t.Fatalf("expected 400 messages, got %d", len(msgs))
	}

	// Per writer order must be preserved.
	last := make(map[int]int)
	for _, m := range msgs {
		var w, i int
		fmt.Sscanf(m.Content, "%d-%d", &w, &i)
		if prev, ok := last[w]; ok && i != prev+1 {
			t.Fatalf("writer %d out of order: %d after %d", w, i, prev)
		}
		last[w] = i
	}
}

func TestLockSerialisesTurns(t *testing.T) {
	s, _ := newTestStore(100)

	var wg sync.WaitGroup
	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			unlock := s.Lock("A")
			defer unlock()

			// read-modify-write: user then assistant must stay adjacent
			_ = s.GetOrCreate("A")
			s.Append("A", model.Message{Role: model.RoleUser, Content: fmt.Sprint(w)})
			time.Sleep(5 * time.Millisecond)
			s.Append("A", model.Message{Role: model.RoleAssistant, Content: fmt.Sprint(w)})
		}(w)
	}
	wg.Wait()

	msgs := s.GetOrCreate("A").Messages
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	for i := 0; i < 4; i += 2 {
		if msgs[i].Role != model.RoleUser || msgs[i+1].Role != model.RoleAssistant || msgs[i].Content != msgs[i+1].Content {
			t.Errorf("turn interleaved: %+v", msgs)
		}
	}
}

func TestLockDoesNotBlockOtherIdentities(t *testing.T) {
	s, _ := newTestStore(20)
	unlock := s.Lock("A")
	defer unlock()

	done := make(chan struct{})
	go func() {
		u := s.Lock("B")
		s.Append("B", model.Message{Role: model.RoleUser, Content: "x"})
		u()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("identity B blocked by A")
	}
}

func TestPeekClearAndSearchCache(t *testing.T) {
	s, _ := newTestStore(20)

	if _, ok := s.Peek("x"); ok {
		t.Fatal("peek must not create")
	}
	if s.Len() != 0 {
		t.Fatal("peek created a session")
	}

	s.SetSearchCache("x", []model.Listing{{Title: "Bisiklet"}})
	if got := s.SearchCache("x"); len(got) != 1 || got[0].Title != "Bisiklet" {
		t.Errorf("unexpected cache: %+v", got)
	}
	if got := s.SearchCache("missing"); got != nil {
		t.Errorf("expected nil cache, got %+v", got)
	}

	if !s.Clear("x") {
		t.Error("expected Clear to report an existing session")
	}
	if s.Clear("x") {
		t.Error("second Clear should report nothing to clear")
	}
}
