package game

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(time.Hour, time.Minute, zaptest.NewLogger(t))
}

func TestCreateAndGetMatch(t *testing.T) {
	mgr := newTestManager(t)
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)

	m := mgr.CreateMatch(1, 2, deck, deck)
	if m.ID == "" {
		t.Fatal("expected a match ID")
	}

	got, ok := mgr.GetMatch(m.ID)
	if !ok {
		t.Fatal("expected to find the created match")
	}
	if got != m {
		t.Error("expected the registry to return the same match")
	}

	if _, ok := mgr.GetMatch("no-such-match"); ok {
		t.Error("expected lookup of unknown ID to miss")
	}
}

func TestRemoveMatch(t *testing.T) {
	mgr := newTestManager(t)
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)

	m := mgr.CreateMatch(1, 2, deck, deck)
	mgr.RemoveMatch(m.ID)

	if _, ok := mgr.GetMatch(m.ID); ok {
		t.Error("expected removed match to be gone")
	}
}

func TestActiveMatchCount(t *testing.T) {
	mgr := newTestManager(t)
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)

	m1 := mgr.CreateMatch(1, 2, deck, deck)
	mgr.CreateMatch(3, 4, deck, deck)

	if got := mgr.ActiveMatchCount(); got != 2 {
		t.Fatalf("expected 2 active matches, got %d", got)
	}

	m1.mu.Lock()
	m1.end(2)
	m1.mu.Unlock()

	if got := mgr.ActiveMatchCount(); got != 1 {
		t.Errorf("expected 1 active match after one ended, got %d", got)
	}
}

func TestConcurrentMatchAccess(t *testing.T) {
	mgr := newTestManager(t)
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)

	var wg sync.WaitGroup
	ids := make([]string, 20)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m := mgr.CreateMatch(int32(n*2+1), int32(n*2+2), deck, deck)
			ids[n] = m.ID
		}(i)
	}
	wg.Wait()

	for i, id := range ids {
		if _, ok := mgr.GetMatch(id); !ok {
			t.Errorf("match %d missing after concurrent creation", i)
		}
	}
	if got := mgr.ActiveMatchCount(); got != 20 {
		t.Errorf("expected 20 active matches, got %d", got)
	}
}

func TestConcurrentActionsSerializePerMatch(t *testing.T) {
	mgr := newTestManager(t)
	p := NewProcessor(zaptest.NewLogger(t))
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)
	m := mgr.CreateMatch(1, 2, deck, deck)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				// Whichever submission is out of turn is rejected; the other
				// applies. Either way the match must stay coherent.
				p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionEndTurn})
				p.Process(m, Action{MatchID: m.ID, PlayerID: 2, Type: ActionEndTurn})
				m.View(1)
			}
		}()
	}
	wg.Wait()

	// Turn state must still be coherent: the current player is one of the two
	// participants and the turn counter advanced monotonically.
	if m.CurrentPlayerID != 1 && m.CurrentPlayerID != 2 {
		t.Errorf("current player corrupted: %d", m.CurrentPlayerID)
	}
	if m.TurnNumber < 1 {
		t.Errorf("turn number corrupted: %d", m.TurnNumber)
	}
}

func TestSweepExpiredReclaimsEndedMatches(t *testing.T) {
	mgr := newTestManager(t)
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)

	ended := mgr.CreateMatch(1, 2, deck, deck)
	ended.mu.Lock()
	ended.end(1)
	past := time.Now().Add(-2 * time.Hour)
	ended.EndedAt = &past
	ended.mu.Unlock()

	fresh := mgr.CreateMatch(3, 4, deck, deck)

	mgr.sweepExpired(time.Now())

	if _, ok := mgr.GetMatch(ended.ID); ok {
		t.Error("expected ended match past TTL to be reclaimed")
	}
	if _, ok := mgr.GetMatch(fresh.ID); !ok {
		t.Error("expected fresh match to survive the sweep")
	}
}

func TestSweepExpiredReclaimsIdleMatches(t *testing.T) {
	mgr := newTestManager(t)
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)

	idle := mgr.CreateMatch(1, 2, deck, deck)
	idle.mu.Lock()
	idle.lastActionAt = time.Now().Add(-2 * time.Hour)
	idle.mu.Unlock()

	mgr.sweepExpired(time.Now())

	if _, ok := mgr.GetMatch(idle.ID); ok {
		t.Error("expected idle match past TTL to be reclaimed")
	}
}

func TestSweepKeepsRecentlyEndedMatchQueryable(t *testing.T) {
	mgr := newTestManager(t)
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)

	m := mgr.CreateMatch(1, 2, deck, deck)
	m.mu.Lock()
	m.end(2)
	m.mu.Unlock()

	mgr.sweepExpired(time.Now())

	got, ok := mgr.GetMatch(m.ID)
	if !ok {
		t.Fatal("recently ended match must stay queryable until the TTL passes")
	}
	if got.GetStatus() != StatusEnded {
		t.Errorf("expected ended status, got %s", got.GetStatus())
	}
}

func TestMatchIDsAreUnique(t *testing.T) {
	mgr := newTestManager(t)
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		m := mgr.CreateMatch(int32(i), int32(i+100), deck, deck)
		if seen[m.ID] {
			t.Fatalf("duplicate match ID %s", m.ID)
		}
		seen[m.ID] = true
	}
}
