package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theduelx/duel-server-go/internal/card"
)

// Status represents the lifecycle state of a match.
type Status int32

const (
	StatusWaitingForPlayers Status = iota
	StatusInProgress
	StatusEnded
	StatusDisconnected
)

func (s Status) String() string {
	switch s {
	case StatusWaitingForPlayers:
		return "WAITING_FOR_PLAYERS"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusEnded:
		return "ENDED"
	case StatusDisconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}

// Match is one live two-player game. Every read and mutation goes through the
// match mutex, so concurrent actions against the same match apply in a total
// order; distinct matches never contend.
type Match struct {
	ID              string
	Player1ID       int32
	Player2ID       int32
	CurrentPlayerID int32
	TurnNumber      int
	Status          Status
	WinnerID        int32 // zero until the match ends
	CreatedAt       time.Time
	EndedAt         *time.Time
	Player1Board    *Board
	Player2Board    *Board

	lastActionAt time.Time
	mu           sync.RWMutex
}

// newMatch builds both boards from the given decks, draws opening hands, and
// ramps the opening player's first turn of mana.
func newMatch(player1ID, player2ID int32, deck1, deck2 []*card.Template) *Match {
	now := time.Now()
	m := &Match{
		ID:              uuid.NewString(),
		Player1ID:       player1ID,
		Player2ID:       player2ID,
		CurrentPlayerID: player1ID,
		TurnNumber:      1,
		Status:          StatusInProgress,
		CreatedAt:       now,
		Player1Board:    newBoard(player1ID, deck1),
		Player2Board:    newBoard(player2ID, deck2),
		lastActionAt:    now,
	}

	m.Player1Board.drawOpeningHand()
	m.Player2Board.drawOpeningHand()
	m.Player1Board.startTurn()

	return m
}

// IsPlayer reports whether the given player participates in this match.
func (m *Match) IsPlayer(playerID int32) bool {
	return playerID == m.Player1ID || playerID == m.Player2ID
}

// GetStatus returns the current status under the match read lock.
func (m *Match) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Status
}

// boardFor returns the board owned by the given player. Callers hold the lock.
func (m *Match) boardFor(playerID int32) *Board {
	if playerID == m.Player1ID {
		return m.Player1Board
	}
	return m.Player2Board
}

// opponentBoardFor returns the other player's board. Callers hold the lock.
func (m *Match) opponentBoardFor(playerID int32) *Board {
	if playerID == m.Player1ID {
		return m.Player2Board
	}
	return m.Player1Board
}

// opponentOf returns the other participant's ID.
func (m *Match) opponentOf(playerID int32) int32 {
	if playerID == m.Player1ID {
		return m.Player2ID
	}
	return m.Player1ID
}

// end marks the match Ended with the given winner. Callers hold the lock.
// Once ended a match is never mutated again; it stays queryable until the
// registry reclaims it.
func (m *Match) end(winnerID int32) {
	now := time.Now()
	m.Status = StatusEnded
	m.WinnerID = winnerID
	m.EndedAt = &now
}
