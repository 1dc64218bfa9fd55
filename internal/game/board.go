package game

import (
	"math/rand"

	"github.com/theduelx/duel-server-go/internal/card"
)

const (
	startingHealth  = 30
	maxHealth       = 30
	maxMana         = 10
	handLimit       = 10
	fieldLimit      = 7
	openingHandSize = 3
)

// Board is one player's full game state within a match: health, mana, and the
// four zones. A board is owned exclusively by its match and is only touched
// under the match lock.
type Board struct {
	PlayerID  int32
	Health    int
	Mana      int
	MaxMana   int
	Hand      []*card.Instance
	Field     []*card.Instance
	Deck      []*card.Instance
	Graveyard []*card.Instance
}

// newBoard clones every deck template into a fresh instance so no card state
// is ever shared with another board or another match.
func newBoard(playerID int32, deck []*card.Template) *Board {
	instances := make([]*card.Instance, 0, len(deck))
	for _, t := range deck {
		instances = append(instances, t.Instantiate())
	}

	return &Board{
		PlayerID:  playerID,
		Health:    startingHealth,
		Hand:      make([]*card.Instance, 0, handLimit),
		Field:     make([]*card.Instance, 0, fieldLimit),
		Deck:      instances,
		Graveyard: make([]*card.Instance, 0),
	}
}

// drawCard removes one card from a uniformly random deck position. The card
// goes to hand, or straight to the graveyard when the hand is full (no effect
// fires on a milled card). Drawing from an empty deck is a no-op.
func (b *Board) drawCard() {
	if len(b.Deck) == 0 {
		return
	}

	idx := rand.Intn(len(b.Deck))
	drawn := b.Deck[idx]
	b.Deck = append(b.Deck[:idx], b.Deck[idx+1:]...)

	if len(b.Hand) < handLimit {
		b.Hand = append(b.Hand, drawn)
	} else {
		b.Graveyard = append(b.Graveyard, drawn)
	}
}

// drawOpeningHand draws the opening cards; a short deck yields a short hand.
func (b *Board) drawOpeningHand() {
	for i := 0; i < openingHandSize; i++ {
		b.drawCard()
	}
}

// startTurn raises max mana by one (capped) and refills current mana.
func (b *Board) startTurn() {
	if b.MaxMana < maxMana {
		b.MaxMana++
	}
	b.Mana = b.MaxMana
}

// findInHand returns the first hand card with the given ID, or -1.
func (b *Board) findInHand(cardID int32) (int, *card.Instance) {
	for i, c := range b.Hand {
		if c.ID == cardID {
			return i, c
		}
	}
	return -1, nil
}

// findOnField returns the first field card with the given ID, or -1.
func (b *Board) findOnField(cardID int32) (int, *card.Instance) {
	for i, c := range b.Field {
		if c.ID == cardID {
			return i, c
		}
	}
	return -1, nil
}

func (b *Board) removeFromHand(idx int) *card.Instance {
	c := b.Hand[idx]
	b.Hand = append(b.Hand[:idx], b.Hand[idx+1:]...)
	return c
}

// placeOnField inserts the card at the requested position, appending when the
// position is absent or out of range. Callers check the field cap first.
func (b *Board) placeOnField(c *card.Instance, position *int32) {
	if position != nil {
		pos := int(*position)
		if pos >= 0 && pos < len(b.Field) {
			b.Field = append(b.Field[:pos], append([]*card.Instance{c}, b.Field[pos:]...)...)
			return
		}
	}
	b.Field = append(b.Field, c)
}

// buryFromField moves a field card to the graveyard.
func (b *Board) buryFromField(c *card.Instance) {
	for i, fc := range b.Field {
		if fc == c {
			b.Field = append(b.Field[:i], b.Field[i+1:]...)
			break
		}
	}
	b.Graveyard = append(b.Graveyard, c)
}
