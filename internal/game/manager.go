package game

import (
	"context"
	"sync"
	"time"

	"github.com/theduelx/duel-server-go/internal/card"
	"go.uber.org/zap"
)

// Manager is the registry of live matches. Creation and lookup are safe under
// concurrent access from many client connections; each match then serializes
// its own mutations behind its own lock.
type Manager struct {
	matches         map[string]*Match
	mu              sync.RWMutex
	logger          *zap.Logger
	matchTTL        time.Duration
	cleanupInterval time.Duration
}

// NewManager creates a new match registry. matchTTL bounds how long an ended
// or idle match stays queryable before the cleanup loop reclaims it.
func NewManager(matchTTL, cleanupInterval time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		matches:         make(map[string]*Match),
		logger:          logger,
		matchTTL:        matchTTL,
		cleanupInterval: cleanupInterval,
	}
}

// CreateMatch allocates a fresh match between the two players, building both
// boards from their decks and drawing opening hands.
func (mgr *Manager) CreateMatch(player1ID, player2ID int32, deck1, deck2 []*card.Template) *Match {
	m := newMatch(player1ID, player2ID, deck1, deck2)

	mgr.mu.Lock()
	mgr.matches[m.ID] = m
	mgr.mu.Unlock()

	mgr.logger.Info("match created",
		zap.String("match_id", m.ID),
		zap.Int32("player1_id", player1ID),
		zap.Int32("player2_id", player2ID),
		zap.Int("deck1_size", len(deck1)),
		zap.Int("deck2_size", len(deck2)),
	)

	return m
}

// GetMatch retrieves a match by ID.
func (mgr *Manager) GetMatch(matchID string) (*Match, bool) {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()

	m, ok := mgr.matches[matchID]
	return m, ok
}

// RemoveMatch drops a match from the registry.
func (mgr *Manager) RemoveMatch(matchID string) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	delete(mgr.matches, matchID)
	mgr.logger.Info("match removed", zap.String("match_id", matchID))
}

// ActiveMatchCount returns the number of matches still in progress.
func (mgr *Manager) ActiveMatchCount() int {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()

	count := 0
	for _, m := range mgr.matches {
		if m.GetStatus() == StatusInProgress {
			count++
		}
	}
	return count
}

// CleanupExpiredMatches sweeps the registry until the context is cancelled.
// Unbounded retention of finished matches is a resource leak, so ended
// matches past the TTL and matches idle past the TTL are reclaimed.
func (mgr *Manager) CleanupExpiredMatches(ctx context.Context) {
	ticker := time.NewTicker(mgr.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mgr.sweepExpired(time.Now())
		}
	}
}

func (mgr *Manager) sweepExpired(now time.Time) {
	expired := make([]string, 0)

	mgr.mu.RLock()
	for id, m := range mgr.matches {
		m.mu.RLock()
		var deadline time.Time
		if m.Status == StatusEnded && m.EndedAt != nil {
			deadline = m.EndedAt.Add(mgr.matchTTL)
		} else {
			deadline = m.lastActionAt.Add(mgr.matchTTL)
		}
		m.mu.RUnlock()

		if now.After(deadline) {
			expired = append(expired, id)
		}
	}
	mgr.mu.RUnlock()

	if len(expired) == 0 {
		return
	}

	mgr.mu.Lock()
	for _, id := range expired {
		delete(mgr.matches, id)
	}
	mgr.mu.Unlock()

	mgr.logger.Info("expired matches reclaimed", zap.Int("count", len(expired)))
}
