package game

import "testing"

func TestViewRedactsOpponentHand(t *testing.T) {
	m, _ := newTestMatch(t)

	view := m.View(1)

	if len(view.Player1Board.Hand) != 3 {
		t.Errorf("expected requesting player to see their 3 hand cards, got %d", len(view.Player1Board.Hand))
	}
	if view.Player2Board.Hand != nil {
		t.Error("expected opponent hand contents hidden")
	}
	if view.Player2Board.HandCount != 3 {
		t.Errorf("expected opponent hand count visible as 3, got %d", view.Player2Board.HandCount)
	}

	// The same match viewed by player 2 redacts the other side.
	view2 := m.View(2)
	if view2.Player1Board.Hand != nil {
		t.Error("expected player 1 hand hidden from player 2")
	}
	if len(view2.Player2Board.Hand) != 3 {
		t.Errorf("expected player 2 to see their own hand, got %d", len(view2.Player2Board.Hand))
	}
}

func TestViewForSpectatorRedactsBothHands(t *testing.T) {
	m, _ := newTestMatch(t)

	view := m.View(777)

	if view.Player1Board.Hand != nil || view.Player2Board.Hand != nil {
		t.Error("a non-participant must not see either hand")
	}
	if view.Player1Board.HandCount != 3 || view.Player2Board.HandCount != 3 {
		t.Error("hand counts stay visible to non-participants")
	}
}

func TestViewExposesPublicZones(t *testing.T) {
	m, p := newTestMatch(t)

	if result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionPlayCard, CardID: i32(1)}); !result.Success {
		t.Fatalf("play failed: %s", result.Message)
	}

	view := m.View(2)

	if len(view.Player1Board.Field) != 1 {
		t.Fatalf("expected the played creature visible on the field, got %d", len(view.Player1Board.Field))
	}
	fielded := view.Player1Board.Field[0]
	if fielded.ID != 1 || fielded.Attack != 2 || fielded.Health != 1 {
		t.Errorf("unexpected field card view: %+v", fielded)
	}
	if fielded.Type != "CREATURE" {
		t.Errorf("expected CREATURE type string, got %q", fielded.Type)
	}
	if view.Player1Board.DeckSize != 7 {
		t.Errorf("expected deck size 7, got %d", view.Player1Board.DeckSize)
	}
}

func TestViewIsDetachedFromMatchState(t *testing.T) {
	m, p := newTestMatch(t)

	view := m.View(1)
	handBefore := len(view.Player1Board.Hand)

	if result := p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionPlayCard, CardID: i32(1)}); !result.Success {
		t.Fatalf("play failed: %s", result.Message)
	}

	if len(view.Player1Board.Hand) != handBefore {
		t.Error("a snapshot must not change when the match does")
	}
}

func TestViewReportsEndedMatch(t *testing.T) {
	m, p := newTestMatch(t)
	p.Process(m, Action{MatchID: m.ID, PlayerID: 1, Type: ActionConcede})

	view := m.View(1)

	if view.Status != "ENDED" {
		t.Errorf("expected ENDED status, got %q", view.Status)
	}
	if view.WinnerID != 2 {
		t.Errorf("expected winner 2, got %d", view.WinnerID)
	}
	if view.EndedAt == nil {
		t.Error("expected ended timestamp in view")
	}
}
