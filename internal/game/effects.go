package game

import "github.com/theduelx/duel-server-go/internal/card"

// faceTargetID addresses a player's face (health total) instead of a card.
const faceTargetID = 0

// resolveOnPlayEffects fires the played card's OnPlay effects. Other triggers
// are data-modeled but inert here; effect types without a resolution below
// are deliberate no-ops so the catalog can grow ahead of the engine.
func resolveOnPlayEffects(played *card.Instance, own, opp *Board, targetID *int32) {
	for _, effect := range played.Effects {
		if effect.Trigger != card.TriggerOnPlay {
			continue
		}

		switch effect.Type {
		case card.EffectDamage:
			if targetID != nil {
				applyDamage(opp, *targetID, effect.Magnitude)
			}
		case card.EffectHeal:
			if targetID != nil {
				applyHeal(own, *targetID, effect.Magnitude)
			}
		case card.EffectDrawCard:
			for i := 0; i < effect.Magnitude; i++ {
				own.drawCard()
			}
		}
	}
}

// applyDamage hits the opponent's face (target 0) or one of their creatures;
// a creature dropped to zero or below is buried.
func applyDamage(target *Board, targetID int32, magnitude int) {
	if targetID == faceTargetID {
		target.Health -= magnitude
		return
	}

	_, creature := target.findOnField(targetID)
	if creature == nil {
		return
	}

	creature.Health -= magnitude
	if creature.Health <= 0 {
		target.buryFromField(creature)
	}
}

// applyHeal restores the caster's face capped at the health maximum; creature
// healing is uncapped.
func applyHeal(target *Board, targetID int32, magnitude int) {
	if targetID == faceTargetID {
		target.Health += magnitude
		if target.Health > maxHealth {
			target.Health = maxHealth
		}
		return
	}

	if _, creature := target.findOnField(targetID); creature != nil {
		creature.Health += magnitude
	}
}
