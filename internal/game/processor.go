package game

import (
	"fmt"
	"time"

	"github.com/theduelx/duel-server-go/internal/card"
	"go.uber.org/zap"
)

// Processor is the single state-transition function for matches. It validates
// one action against current match state, dispatches to the matching
// transition, and reports the outcome as a Result. The whole transition runs
// under the match lock, so concurrent actions serialize per match.
type Processor struct {
	logger *zap.Logger
}

// NewProcessor creates a new action processor.
func NewProcessor(logger *zap.Logger) *Processor {
	return &Processor{logger: logger}
}

// Process applies one action to the match. Validation short-circuits in
// order: match present, match in progress, acting player owns the turn.
func (p *Processor) Process(m *Match, action Action) Result {
	if m == nil {
		return failureResult("match not found")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Status != StatusInProgress {
		return failureResult("match is not in progress")
	}

	if action.PlayerID != m.CurrentPlayerID {
		return failureResult("not your turn")
	}

	m.lastActionAt = time.Now()

	own := m.boardFor(action.PlayerID)
	opp := m.opponentBoardFor(action.PlayerID)

	var result Result
	switch action.Type {
	case ActionPlayCard:
		result = p.playCard(m, own, opp, action)
	case ActionAttack:
		result = p.attack(m, own, opp, action)
	case ActionEndTurn:
		result = p.endTurn(m, action.PlayerID)
	case ActionConcede:
		result = p.concede(m, action.PlayerID)
	default:
		result = failureResult("invalid action")
	}

	p.logger.Debug("action processed",
		zap.String("match_id", m.ID),
		zap.Int32("player_id", action.PlayerID),
		zap.String("action", action.Type.String()),
		zap.Bool("success", result.Success),
		zap.String("message", result.Message),
	)

	return result
}

// playCard validates fully before mutating, so a rejected play leaves hand,
// mana, and field untouched.
func (p *Processor) playCard(m *Match, own, opp *Board, action Action) Result {
	if action.CardID == nil {
		return failureResult("card id not specified")
	}

	idx, played := own.findInHand(*action.CardID)
	if played == nil {
		return failureResult("card not found in hand")
	}

	if played.ManaCost > own.Mana {
		return failureResult("insufficient mana")
	}

	switch played.Type {
	case card.TypeCreature, card.TypeArtifact:
		if len(own.Field) >= fieldLimit {
			return failureResult("field is full")
		}
		own.Mana -= played.ManaCost
		own.removeFromHand(idx)
		own.placeOnField(played, action.Position)

	case card.TypeSpell:
		own.Mana -= played.ManaCost
		own.removeFromHand(idx)
		resolveOnPlayEffects(played, own, opp, action.TargetID)
		own.Graveyard = append(own.Graveyard, played)

	default:
		return failureResult("unknown card type")
	}

	// A lethal spell ends the match the same way lethal combat damage does.
	if opp.Health <= 0 {
		m.end(own.PlayerID)
	}

	return successResult(fmt.Sprintf("card %s played", played.Name))
}

func (p *Processor) attack(m *Match, own, opp *Board, action Action) Result {
	if action.CardID == nil {
		return failureResult("attacker not specified")
	}

	_, attacker := own.findOnField(*action.CardID)
	if attacker == nil {
		return failureResult("attacking creature not found on field")
	}

	if action.TargetID == nil {
		return failureResult("target not specified")
	}

	if *action.TargetID == faceTargetID {
		opp.Health -= attacker.Attack
	} else {
		_, defender := opp.findOnField(*action.TargetID)
		if defender == nil {
			return failureResult("defending creature not found")
		}
		resolveCombat(own, opp, attacker, defender)
	}

	if opp.Health <= 0 {
		m.end(own.PlayerID)
		p.logger.Info("match ended by lethal damage",
			zap.String("match_id", m.ID),
			zap.Int32("winner_id", own.PlayerID),
		)
	}

	return successResult("attack resolved")
}

// endTurn always succeeds once turn ownership has been checked: the turn
// passes, the new current player ramps mana and draws.
func (p *Processor) endTurn(m *Match, playerID int32) Result {
	m.CurrentPlayerID = m.opponentOf(playerID)
	m.TurnNumber++

	next := m.boardFor(m.CurrentPlayerID)
	next.startTurn()
	next.drawCard()

	return successResult("turn ended")
}

func (p *Processor) concede(m *Match, playerID int32) Result {
	m.end(m.opponentOf(playerID))
	p.logger.Info("match ended by concession",
		zap.String("match_id", m.ID),
		zap.Int32("conceding_player_id", playerID),
		zap.Int32("winner_id", m.WinnerID),
	)

	return successResult("match conceded")
}
