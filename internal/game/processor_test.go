package game

import (
	"testing"

	"github.com/theduelx/duel-server-go/internal/card"
	"go.uber.org/zap/zaptest"
)

func i32(v int32) *int32 { return &v }

// creatureTemplate builds a minimal creature for tests.
func creatureTemplate(id int32, cost, attack, health int) *card.Template {
	return &card.Template{
		ID:       id,
		Name:     "Test Creature",
		ManaCost: cost,
		Attack:   attack,
		Health:   health,
		Type:     card.TypeCreature,
		Rarity:   card.RarityCommon,
	}
}

func spellTemplate(id int32, cost int, effect card.EffectDef) *card.Template {
	return &card.Template{
		ID:       id,
		Name:     "Test Spell",
		ManaCost: cost,
		Type:     card.TypeSpell,
		Rarity:   card.RarityCommon,
		Effects:  []card.EffectDef{effect},
	}
}

// uniformDeck returns n copies of the same template.
func uniformDeck(t *card.Template, n int) []*card.Template {
	deck := make([]*card.Template, n)
	for i := range deck {
		deck[i] = t
	}
	return deck
}

// newTestMatch builds a match between players 1 and 2 with identical ten-card
// decks of 1-mana 2/1 creatures (card ID 1).
func newTestMatch(t *testing.T) (*Match, *Processor) {
	t.Helper()
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)
	m := newMatch(1, 2, deck, deck)
	return m, NewProcessor(zaptest.NewLogger(t))
}

func TestNewMatchOpeningState(t *testing.T) {
	m, _ := newTestMatch(t)

	if m.Status != StatusInProgress {
		t.Fatalf("expected match in progress, got %s", m.Status)
	}
	if m.CurrentPlayerID != 1 {
		t.Errorf("expected player 1 to open, got %d", m.CurrentPlayerID)
	}
	if m.TurnNumber != 1 {
		t.Errorf("expected turn 1, got %d", m.TurnNumber)
	}

	for _, b := range []*Board{m.Player1Board, m.Player2Board} {
		if len(b.Hand) != 3 {
			t.Errorf("player %d: expected opening hand of 3, got %d", b.PlayerID, len(b.Hand))
		}
		if len(b.Deck) != 7 {
			t.Errorf("player %d: expected 7 cards left in deck, got %d", b.PlayerID, len(b.Deck))
		}
		if b.Health != 30 {
			t.Errorf("player %d: expected 30 health, got %d", b.PlayerID, b.Health)
		}
	}

	// Only the opening player has been given mana.
	if m.Player1Board.Mana != 1 || m.Player1Board.MaxMana != 1 {
		t.Errorf("expected opener at 1/1 mana, got %d/%d", m.Player1Board.Mana, m.Player1Board.MaxMana)
	}
	if m.Player2Board.Mana != 0 || m.Player2Board.MaxMana != 0 {
		t.Errorf("expected second player at 0/0 mana, got %d/%d", m.Player2Board.Mana, m.Player2Board.MaxMana)
	}
}

func TestProcessNilMatch(t *testing.T) {
	p := NewProcessor(zaptest.NewLogger(t))

	result := p.Process(nil, Action{PlayerID: 1, Type: ActionEndTurn})
	if result.Success {
		t.Fatal("expected failure for missing match")
	}
	if result.Message != "match not found" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestProcessRejectsOutOfTurnAction(t *testing.T) {
	m, p := newTestMatch(t)

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 2, Type: ActionEndTurn})
	if result.Success {
		t.Fatal("expected out-of-turn action to fail")
	}
	if result.Message != "not your turn" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if m.CurrentPlayerID != 1 || m.TurnNumber != 1 {
		t.Error("rejected action must not change turn state")
	}
}

func TestProcessRejectsEndedMatch(t *testing.T) {
	m, p := newTestMatch(t)
	m.end(2)

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionEndTurn})
	if result.Success {
		t.Fatal("expected action on ended match to fail")
	}
	if result.Message != "match is not in progress" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestPlayCreature(t *testing.T) {
	m, p := newTestMatch(t)

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionPlayCard, CardID: i32(1)})
	if !result.Success {
		t.Fatalf("expected play to succeed: %s", result.Message)
	}

	b := m.Player1Board
	if len(b.Field) != 1 {
		t.Fatalf("expected 1 creature on field, got %d", len(b.Field))
	}
	if len(b.Hand) != 2 {
		t.Errorf("expected 2 cards left in hand, got %d", len(b.Hand))
	}
	if b.Mana != 0 {
		t.Errorf("expected mana spent to 0, got %d", b.Mana)
	}
}

func TestPlayCardNotInHand(t *testing.T) {
	m, p := newTestMatch(t)

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionPlayCard, CardID: i32(42)})
	if result.Success {
		t.Fatal("expected unknown card to fail")
	}
	if result.Message != "card not found in hand" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestPlayCardInsufficientMana(t *testing.T) {
	deck := uniformDeck(creatureTemplate(5, 5, 4, 4), 10)
	m := newMatch(1, 2, deck, deck)
	p := NewProcessor(zaptest.NewLogger(t))

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionPlayCard, CardID: i32(5)})
	if result.Success {
		t.Fatal("expected unaffordable card to fail")
	}
	if result.Message != "insufficient mana" {
		t.Errorf("unexpected message: %q", result.Message)
	}

	b := m.Player1Board
	if len(b.Hand) != 3 || b.Mana != 1 || len(b.Field) != 0 {
		t.Error("rejected play must leave hand, mana, and field untouched")
	}
}

func TestPlayCreatureFieldFull(t *testing.T) {
	m, p := newTestMatch(t)

	tpl := creatureTemplate(1, 1, 2, 1)
	for i := 0; i < fieldLimit; i++ {
		m.Player1Board.Field = append(m.Player1Board.Field, tpl.Instantiate())
	}
	handBefore := len(m.Player1Board.Hand)
	manaBefore := m.Player1Board.Mana

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionPlayCard, CardID: i32(1)})
	if result.Success {
		t.Fatal("expected play onto a full field to fail")
	}
	if result.Message != "field is full" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if len(m.Player1Board.Hand) != handBefore || m.Player1Board.Mana != manaBefore {
		t.Error("rejected play must leave hand and mana untouched")
	}
	if len(m.Player1Board.Field) != fieldLimit {
		t.Errorf("expected field to stay at %d, got %d", fieldLimit, len(m.Player1Board.Field))
	}
}

func TestPlayCreatureAtPosition(t *testing.T) {
	m, p := newTestMatch(t)

	first := creatureTemplate(90, 0, 1, 1).Instantiate()
	second := creatureTemplate(91, 0, 1, 1).Instantiate()
	m.Player1Board.Field = append(m.Player1Board.Field, first, second)

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionPlayCard,
		CardID:   i32(1),
		Position: i32(1),
	})
	if !result.Success {
		t.Fatalf("expected positioned play to succeed: %s", result.Message)
	}

	field := m.Player1Board.Field
	if len(field) != 3 {
		t.Fatalf("expected 3 creatures on field, got %d", len(field))
	}
	if field[0] != first || field[1].ID != 1 || field[2] != second {
		t.Error("expected played creature inserted at position 1")
	}
}

func TestPlayDamageSpellAtFace(t *testing.T) {
	fireball := spellTemplate(6, 2, card.EffectDef{
		Type: card.EffectDamage, Trigger: card.TriggerOnPlay, Magnitude: 3,
	})
	deck := uniformDeck(fireball, 10)
	m := newMatch(1, 2, deck, deck)
	p := NewProcessor(zaptest.NewLogger(t))

	m.Player1Board.Mana = 2
	m.Player1Board.MaxMana = 2

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionPlayCard,
		CardID:   i32(6),
		TargetID: i32(0),
	})
	if !result.Success {
		t.Fatalf("expected spell to resolve: %s", result.Message)
	}

	if m.Player2Board.Health != 27 {
		t.Errorf("expected opponent at 27 health, got %d", m.Player2Board.Health)
	}
	if m.Player1Board.Mana != 0 {
		t.Errorf("expected caster mana spent to 0, got %d", m.Player1Board.Mana)
	}
	if len(m.Player1Board.Hand) != 2 {
		t.Errorf("expected spell to leave hand, got %d cards", len(m.Player1Board.Hand))
	}
	if len(m.Player1Board.Graveyard) != 1 || m.Player1Board.Graveyard[0].ID != 6 {
		t.Error("expected resolved spell in the caster's graveyard")
	}
	if m.Status != StatusInProgress {
		t.Error("non-lethal spell must not end the match")
	}
}

func TestLethalSpellEndsMatch(t *testing.T) {
	fireball := spellTemplate(6, 2, card.EffectDef{
		Type: card.EffectDamage, Trigger: card.TriggerOnPlay, Magnitude: 3,
	})
	deck := uniformDeck(fireball, 10)
	m := newMatch(1, 2, deck, deck)
	p := NewProcessor(zaptest.NewLogger(t))

	m.Player1Board.Mana = 2
	m.Player2Board.Health = 3

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionPlayCard,
		CardID:   i32(6),
		TargetID: i32(0),
	})
	if !result.Success {
		t.Fatalf("expected spell to resolve: %s", result.Message)
	}
	if m.Status != StatusEnded {
		t.Fatal("expected lethal spell to end the match")
	}
	if m.WinnerID != 1 {
		t.Errorf("expected player 1 to win, got %d", m.WinnerID)
	}
}

func TestEndTurnRampsAndDraws(t *testing.T) {
	m, p := newTestMatch(t)

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionEndTurn})
	if !result.Success {
		t.Fatalf("expected end turn to succeed: %s", result.Message)
	}

	if m.CurrentPlayerID != 2 {
		t.Errorf("expected turn to pass to player 2, got %d", m.CurrentPlayerID)
	}
	if m.TurnNumber != 2 {
		t.Errorf("expected turn 2, got %d", m.TurnNumber)
	}

	b := m.Player2Board
	if b.Mana != 1 || b.MaxMana != 1 {
		t.Errorf("expected player 2 at 1/1 mana on their first turn, got %d/%d", b.Mana, b.MaxMana)
	}
	if len(b.Hand) != 4 {
		t.Errorf("expected player 2 to draw to 4 cards, got %d", len(b.Hand))
	}
	if len(b.Deck) != 6 {
		t.Errorf("expected player 2 deck at 6, got %d", len(b.Deck))
	}
}

func TestManaRampAcrossTurns(t *testing.T) {
	m, p := newTestMatch(t)

	// Two full rounds: player 1 should start their third turn at 3/3.
	for i := 0; i < 4; i++ {
		playerID := m.CurrentPlayerID
		if result := p.Process(m, Action{MatchID: m.ID, PlayerID: playerID, Type: ActionEndTurn}); !result.Success {
			t.Fatalf("end turn %d failed: %s", i, result.Message)
		}
	}

	if m.CurrentPlayerID != 1 {
		t.Fatalf("expected player 1's turn, got %d", m.CurrentPlayerID)
	}
	if m.Player1Board.Mana != 3 || m.Player1Board.MaxMana != 3 {
		t.Errorf("expected player 1 at 3/3 mana, got %d/%d", m.Player1Board.Mana, m.Player1Board.MaxMana)
	}
}

func TestConcede(t *testing.T) {
	m, p := newTestMatch(t)

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionConcede})
	if !result.Success {
		t.Fatalf("expected concede to succeed: %s", result.Message)
	}
	if m.Status != StatusEnded {
		t.Fatal("expected conceded match to be ended")
	}
	if m.WinnerID != 2 {
		t.Errorf("expected opponent to win a conceded match, got %d", m.WinnerID)
	}
	if m.EndedAt == nil {
		t.Error("expected ended timestamp to be set")
	}
}

func TestEndedMatchRejectsFurtherActions(t *testing.T) {
	m, p := newTestMatch(t)

	p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionConcede})

	result := p.Process(m, Action{MatchID: m.ID, PlayerID: 2, Type: ActionEndTurn})
	if result.Success {
		t.Fatal("expected action after match end to fail")
	}
}

// TestTwoTurnOpening walks the first two turns of a match and then a face
// attack, checking every intermediate state.
func TestTwoTurnOpening(t *testing.T) {
	m, p := newTestMatch(t)

	if result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionPlayCard, CardID: i32(1)}); !result.Success {
		t.Fatalf("player 1 play failed: %s", result.Message)
	}
	if result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionEndTurn}); !result.Success {
		t.Fatalf("player 1 end turn failed: %s", result.Message)
	}

	if result := p.Process(m, Action{MatchID: m.ID, PlayerID: 2, Type: ActionPlayCard, CardID: i32(1)}); !result.Success {
		t.Fatalf("player 2 play failed: %s", result.Message)
	}
	if result := p.Process(m, Action{MatchID: m.ID, PlayerID: 2, Type: ActionEndTurn}); !result.Success {
		t.Fatalf("player 2 end turn failed: %s", result.Message)
	}

	// Player 1, turn 3, at 2/2 mana with a creature already down.
	if m.Player1Board.Mana != 2 || m.Player1Board.MaxMana != 2 {
		t.Errorf("expected player 1 at 2/2 mana, got %d/%d", m.Player1Board.Mana, m.Player1Board.MaxMana)
	}

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionAttack,
		CardID:   i32(1),
		TargetID: i32(0),
	})
	if !result.Success {
		t.Fatalf("face attack failed: %s", result.Message)
	}
	if m.Player2Board.Health != 28 {
		t.Errorf("expected player 2 at 28 health after a 2-attack hit, got %d", m.Player2Board.Health)
	}
}
