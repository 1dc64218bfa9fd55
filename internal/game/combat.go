package game

import "github.com/theduelx/duel-server-go/internal/card"

// resolveCombat applies the simultaneous damage exchange between an attacker
// and a defending creature. Both hits land before either removal is
// evaluated, so an even trade removes both creatures. Newly played creatures
// may attack immediately; there is no summoning sickness rule.
func resolveCombat(attackerBoard, defenderBoard *Board, attacker, defender *card.Instance) {
	attacker.Health -= defender.Attack
	defender.Health -= attacker.Attack

	if attacker.Health <= 0 {
		attackerBoard.buryFromField(attacker)
	}
	if defender.Health <= 0 {
		defenderBoard.buryFromField(defender)
	}
}
