package game

import (
	"time"

	"github.com/theduelx/duel-server-go/internal/card"
)

// CardView is the wire-facing projection of one card instance.
type CardView struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	ManaCost int    `json:"mana_cost"`
	Attack   int    `json:"attack"`
	Health   int    `json:"health"`
	Type     string `json:"type"`
	Rarity   string `json:"rarity"`
}

// BoardView is the projection of one board. Hand is populated only for the
// requesting player; opponents see the hand count alone.
type BoardView struct {
	PlayerID      int32      `json:"player_id"`
	Health        int        `json:"health"`
	Mana          int        `json:"mana"`
	MaxMana       int        `json:"max_mana"`
	DeckSize      int        `json:"deck_size"`
	GraveyardSize int        `json:"graveyard_size"`
	HandCount     int        `json:"hand_count"`
	Hand          []CardView `json:"hand,omitempty"`
	Field         []CardView `json:"field"`
}

// MatchView is the redacted snapshot of a match handed to one player.
type MatchView struct {
	MatchID         string     `json:"match_id"`
	Player1ID       int32      `json:"player1_id"`
	Player2ID       int32      `json:"player2_id"`
	CurrentPlayerID int32      `json:"current_player_id"`
	TurnNumber      int        `json:"turn_number"`
	Status          string     `json:"status"`
	WinnerID        int32      `json:"winner_id"`
	CreatedAt       time.Time  `json:"created_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	Player1Board    BoardView  `json:"player1_board"`
	Player2Board    BoardView  `json:"player2_board"`
}

// View produces the redacted snapshot for the requesting player. Only the
// match read lock is held; the returned view shares no state with the match.
func (m *Match) View(requestingPlayerID int32) MatchView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MatchView{
		MatchID:         m.ID,
		Player1ID:       m.Player1ID,
		Player2ID:       m.Player2ID,
		CurrentPlayerID: m.CurrentPlayerID,
		TurnNumber:      m.TurnNumber,
		Status:          m.Status.String(),
		WinnerID:        m.WinnerID,
		CreatedAt:       m.CreatedAt,
		EndedAt:         m.EndedAt,
		Player1Board:    boardView(m.Player1Board, requestingPlayerID == m.Player1ID),
		Player2Board:    boardView(m.Player2Board, requestingPlayerID == m.Player2ID),
	}
}

func boardView(b *Board, showHand bool) BoardView {
	view := BoardView{
		PlayerID:      b.PlayerID,
		Health:        b.Health,
		Mana:          b.Mana,
		MaxMana:       b.MaxMana,
		DeckSize:      len(b.Deck),
		GraveyardSize: len(b.Graveyard),
		HandCount:     len(b.Hand),
		Field:         cardViews(b.Field),
	}
	if showHand {
		view.Hand = cardViews(b.Hand)
	}
	return view
}

func cardViews(cards []*card.Instance) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, CardView{
			ID:       c.ID,
			Name:     c.Name,
			Text:     c.Text,
			ManaCost: c.ManaCost,
			Attack:   c.Attack,
			Health:   c.Health,
			Type:     c.Type.String(),
			Rarity:   c.Rarity.String(),
		})
	}
	return views
}
