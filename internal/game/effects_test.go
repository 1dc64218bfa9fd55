package game

import (
	"testing"

	"github.com/theduelx/duel-server-go/internal/card"
)

func TestHealFaceCappedAtMaximum(t *testing.T) {
	b := newBoard(1, nil)
	b.Health = 28

	applyHeal(b, faceTargetID, 4)

	if b.Health != maxHealth {
		t.Errorf("expected face healing capped at %d, got %d", maxHealth, b.Health)
	}
}

func TestHealCreatureUncapped(t *testing.T) {
	b := newBoard(1, nil)
	creature := creatureTemplate(40, 2, 2, 3).Instantiate()
	b.Field = append(b.Field, creature)

	applyHeal(b, 40, 5)

	if creature.Health != 8 {
		t.Errorf("expected creature at 8 health, got %d", creature.Health)
	}
}

func TestDamageBuriesDeadCreature(t *testing.T) {
	b := newBoard(1, nil)
	creature := creatureTemplate(40, 2, 2, 3).Instantiate()
	b.Field = append(b.Field, creature)

	applyDamage(b, 40, 3)

	if len(b.Field) != 0 {
		t.Fatalf("expected creature removed, field has %d", len(b.Field))
	}
	if len(b.Graveyard) != 1 || b.Graveyard[0] != creature {
		t.Error("expected dead creature in graveyard")
	}
}

func TestDamageSurvivingCreatureStaysFielded(t *testing.T) {
	b := newBoard(1, nil)
	creature := creatureTemplate(40, 2, 2, 5).Instantiate()
	b.Field = append(b.Field, creature)

	applyDamage(b, 40, 3)

	if creature.Health != 2 {
		t.Errorf("expected creature at 2 health, got %d", creature.Health)
	}
	if len(b.Field) != 1 {
		t.Error("surviving creature must stay on the field")
	}
}

func TestDamageUnknownTargetIsNoOp(t *testing.T) {
	b := newBoard(1, nil)
	b.Field = append(b.Field, creatureTemplate(40, 2, 2, 3).Instantiate())

	applyDamage(b, 99, 3)

	if b.Health != 30 || b.Field[0].Health != 3 {
		t.Error("damage at a missing target must change nothing")
	}
}

func TestDrawEffectDrawsMagnitudeCards(t *testing.T) {
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)
	own := newBoard(1, deck)
	opp := newBoard(2, deck)

	insight := spellTemplate(8, 3, card.EffectDef{
		Type: card.EffectDrawCard, Trigger: card.TriggerOnPlay, Magnitude: 2,
	}).Instantiate()

	resolveOnPlayEffects(insight, own, opp, nil)

	if len(own.Hand) != 2 {
		t.Errorf("expected 2 cards drawn, got %d", len(own.Hand))
	}
	if len(own.Deck) != 8 {
		t.Errorf("expected deck at 8, got %d", len(own.Deck))
	}
	if len(opp.Hand) != 0 {
		t.Error("draw effect must not touch the opponent")
	}
}

func TestTargetedEffectWithoutTargetIsNoOp(t *testing.T) {
	own := newBoard(1, nil)
	opp := newBoard(2, nil)

	fireball := spellTemplate(6, 2, card.EffectDef{
		Type: card.EffectDamage, Trigger: card.TriggerOnPlay, Magnitude: 3,
	}).Instantiate()

	resolveOnPlayEffects(fireball, own, opp, nil)

	if opp.Health != 30 {
		t.Errorf("untargeted damage must not resolve, opponent at %d", opp.Health)
	}
}

func TestOnlyOnPlayTriggersFire(t *testing.T) {
	own := newBoard(1, nil)
	opp := newBoard(2, nil)

	deathrattle := spellTemplate(50, 1, card.EffectDef{
		Type: card.EffectDamage, Trigger: card.TriggerOnDeath, Magnitude: 5,
	}).Instantiate()

	resolveOnPlayEffects(deathrattle, own, opp, i32(0))

	if opp.Health != 30 {
		t.Errorf("non-play trigger must not fire, opponent at %d", opp.Health)
	}
}

func TestUnhandledEffectTypeIsNoOp(t *testing.T) {
	own := newBoard(1, nil)
	opp := newBoard(2, nil)

	taunt := spellTemplate(51, 1, card.EffectDef{
		Type: card.EffectTaunt, Trigger: card.TriggerOnPlay, Magnitude: 1,
	}).Instantiate()

	resolveOnPlayEffects(taunt, own, opp, i32(0))

	if own.Health != 30 || opp.Health != 30 || len(own.Hand) != 0 {
		t.Error("unhandled effect types must resolve as no-ops")
	}
}

func TestMultipleEffectsResolveInOrder(t *testing.T) {
	deck := uniformDeck(creatureTemplate(1, 1, 2, 1), 10)
	own := newBoard(1, deck)
	opp := newBoard(2, nil)

	combo := (&card.Template{
		ID: 52, Name: "Combo", ManaCost: 4, Type: card.TypeSpell,
		Effects: []card.EffectDef{
			{Type: card.EffectDamage, Trigger: card.TriggerOnPlay, Magnitude: 2},
			{Type: card.EffectDrawCard, Trigger: card.TriggerOnPlay, Magnitude: 1},
		},
	}).Instantiate()

	resolveOnPlayEffects(combo, own, opp, i32(0))

	if opp.Health != 28 {
		t.Errorf("expected opponent at 28, got %d", opp.Health)
	}
	if len(own.Hand) != 1 {
		t.Errorf("expected 1 card drawn, got %d", len(own.Hand))
	}
}
