package game

import "testing"

func TestDrawCardMovesDeckToHand(t *testing.T) {
	b := newBoard(1, uniformDeck(creatureTemplate(1, 1, 2, 1), 5))

	b.drawCard()

	if len(b.Hand) != 1 {
		t.Errorf("expected 1 card in hand, got %d", len(b.Hand))
	}
	if len(b.Deck) != 4 {
		t.Errorf("expected 4 cards in deck, got %d", len(b.Deck))
	}
}

func TestDrawFromEmptyDeckIsNoOp(t *testing.T) {
	b := newBoard(1, nil)

	b.drawCard()

	if len(b.Hand) != 0 || len(b.Graveyard) != 0 {
		t.Error("drawing from an empty deck must change nothing")
	}
}

func TestDrawAtHandLimitMillsToGraveyard(t *testing.T) {
	b := newBoard(1, uniformDeck(creatureTemplate(1, 1, 2, 1), 12))

	for i := 0; i < handLimit; i++ {
		b.drawCard()
	}
	if len(b.Hand) != handLimit {
		t.Fatalf("expected hand at limit %d, got %d", handLimit, len(b.Hand))
	}

	b.drawCard()

	if len(b.Hand) != handLimit {
		t.Errorf("hand must stay at limit, got %d", len(b.Hand))
	}
	if len(b.Graveyard) != 1 {
		t.Errorf("expected milled card in graveyard, got %d", len(b.Graveyard))
	}
	if len(b.Deck) != 1 {
		t.Errorf("expected 1 card left in deck, got %d", len(b.Deck))
	}
}

func TestOpeningHandFromShortDeck(t *testing.T) {
	b := newBoard(1, uniformDeck(creatureTemplate(1, 1, 2, 1), 2))

	b.drawOpeningHand()

	if len(b.Hand) != 2 {
		t.Errorf("expected the whole short deck in hand, got %d", len(b.Hand))
	}
	if len(b.Deck) != 0 {
		t.Errorf("expected empty deck, got %d", len(b.Deck))
	}
}

func TestStartTurnCapsMaxMana(t *testing.T) {
	b := newBoard(1, nil)

	for i := 0; i < maxMana+3; i++ {
		b.startTurn()
	}

	if b.MaxMana != maxMana {
		t.Errorf("expected max mana capped at %d, got %d", maxMana, b.MaxMana)
	}
	if b.Mana != maxMana {
		t.Errorf("expected mana refilled to %d, got %d", maxMana, b.Mana)
	}
}

func TestStartTurnRefillsSpentMana(t *testing.T) {
	b := newBoard(1, nil)
	b.startTurn()
	b.startTurn()
	b.Mana = 0

	b.startTurn()

	if b.MaxMana != 3 || b.Mana != 3 {
		t.Errorf("expected 3/3 mana, got %d/%d", b.Mana, b.MaxMana)
	}
}

func TestBoardInstancesAreIndependentAcrossBoards(t *testing.T) {
	tpl := creatureTemplate(1, 1, 2, 1)
	deck := uniformDeck(tpl, 3)

	b1 := newBoard(1, deck)
	b2 := newBoard(2, deck)

	b1.Deck[0].Health = 99

	if b2.Deck[0].Health != 1 {
		t.Error("instances built from the same template must not share state")
	}
	if tpl.Health != 1 {
		t.Error("mutating an instance must not touch the template")
	}
}

func TestBuryFromField(t *testing.T) {
	b := newBoard(1, nil)
	first := creatureTemplate(1, 1, 2, 1).Instantiate()
	second := creatureTemplate(2, 2, 3, 2).Instantiate()
	b.Field = append(b.Field, first, second)

	b.buryFromField(first)

	if len(b.Field) != 1 || b.Field[0] != second {
		t.Error("expected only the buried creature removed")
	}
	if len(b.Graveyard) != 1 || b.Graveyard[0] != first {
		t.Error("expected buried creature in graveyard")
	}
}
