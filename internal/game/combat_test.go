package game

import "testing"

func TestAttackFace(t *testing.T) {
	m, p := newTestMatch(t)

	attacker := creatureTemplate(1, 1, 2, 1).Instantiate()
	m.Player1Board.Field = append(m.Player1Board.Field, attacker)

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
		t.Errorf("expected defender at 28 health, got %d", m.Player2Board.Health)
	}
	if attacker.Health != 1 {
		t.Errorf("face attack must not damage the attacker, health is %d", attacker.Health)
	}
}

func TestAttackRequiresFieldedAttacker(t *testing.T) {
	m, p := newTestMatch(t)

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionAttack,
		CardID:   i32(1),
		TargetID: i32(0),
	})
	if result.Success {
		t.Fatal("expected attack without a fielded attacker to fail")
	}
	if result.Message != "attacking creature not found on field" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestAttackUnknownDefender(t *testing.T) {
	m, p := newTestMatch(t)

	m.Player1Board.Field = append(m.Player1Board.Field, creatureTemplate(1, 1, 2, 1).Instantiate())

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionAttack,
		CardID:   i32(1),
		TargetID: i32(77),
	})
	if result.Success {
		t.Fatal("expected attack on a missing defender to fail")
	}
	if result.Message != "defending creature not found" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestCombatDamageIsSimultaneous(t *testing.T) {
	m, p := newTestMatch(t)

	attacker := creatureTemplate(20, 2, 2, 2).Instantiate()
	defender := creatureTemplate(21, 2, 2, 2).Instantiate()
	m.Player1Board.Field = append(m.Player1Board.Field, attacker)
	m.Player2Board.Field = append(m.Player2Board.Field, defender)

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionAttack,
		CardID:   i32(20),
		TargetID: i32(21),
	})
	if !result.Success {
		t.Fatalf("attack failed: %s", result.Message)
	}

	// An even trade removes both creatures.
	if len(m.Player1Board.Field) != 0 {
		t.Errorf("expected attacker removed, field has %d", len(m.Player1Board.Field))
	}
	if len(m.Player2Board.Field) != 0 {
		t.Errorf("expected defender removed, field has %d", len(m.Player2Board.Field))
	}
	if len(m.Player1Board.Graveyard) != 1 || len(m.Player2Board.Graveyard) != 1 {
		t.Error("expected both creatures in their owners' graveyards")
	}
	if m.Player1Board.Health != 30 || m.Player2Board.Health != 30 {
		t.Error("creature combat must not touch player health")
	}
}

func TestCombatSurvivorKeepsDamage(t *testing.T) {
	m, p := newTestMatch(t)

	attacker := creatureTemplate(20, 4, 5, 4).Instantiate()
	defender := creatureTemplate(21, 2, 2, 3).Instantiate()
	m.Player1Board.Field = append(m.Player1Board.Field, attacker)
	m.Player2Board.Field = append(m.Player2Board.Field, defender)

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionAttack,
		CardID:   i32(20),
		TargetID: i32(21),
	})
	if !result.Success {
		t.Fatalf("attack failed: %s", result.Message)
	}

	if len(m.Player1Board.Field) != 1 {
		t.Fatal("expected attacker to survive")
	}
	if attacker.Health != 2 {
		t.Errorf("expected attacker at 2 health, got %d", attacker.Health)
	}
	if len(m.Player2Board.Field) != 0 {
		t.Error("expected defender removed")
	}
}

func TestLethalFaceAttackEndsMatch(t *testing.T) {
	m, p := newTestMatch(t)

	m.Player2Board.Health = 2
	m.Player1Board.Field = append(m.Player1Board.Field, creatureTemplate(1, 1, 2, 1).Instantiate())

	result := p.Process(m, Action{
		MatchID:  m.ID,
		PlayerID: 1,
		Type:     ActionAttack,
		CardID:   i32(1),
		TargetID: i32(0),
	})
	if !result.Success {
		t.Fatalf("attack failed: %s", result.Message)
	}
	if m.Status != StatusEnded {
		t.Fatal("expected lethal damage to end the match")
	}
	if m.WinnerID != 1 {
		t.Errorf("expected player 1 to win, got %d", m.WinnerID)
	}
	if m.EndedAt == nil {
		t.Error("expected ended timestamp to be set")
	}
}

func TestResolveCombatDirect(t *testing.T) {
	attackerBoard := newBoard(1, nil)
	defenderBoard := newBoard(2, nil)

	attacker := creatureTemplate(30, 3, 1, 5).Instantiate()
	defender := creatureTemplate(31, 3, 3, 4).Instantiate()
	attackerBoard.Field = append(attackerBoard.Field, attacker)
	defenderBoard.Field = append(defenderBoard.Field, defender)

	resolveCombat(attackerBoard, defenderBoard, attacker, defender)

	if attacker.Health != 2 {
		t.Errorf("expected attacker at 2 health, got %d", attacker.Health)
	}
	if defender.Health != 3 {
		t.Errorf("expected defender at 3 health, got %d", defender.Health)
	}
	if len(attackerBoard.Field) != 1 || len(defenderBoard.Field) != 1 {
		t.Error("neither creature should have been removed")
	}
}
