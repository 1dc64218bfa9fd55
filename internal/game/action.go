package game

import "time"

// ActionType identifies a player-submitted intent.
type ActionType int32

const (
	ActionPlayCard ActionType = iota
	ActionAttack
	ActionEndTurn
	ActionConcede
)

func (a ActionType) String() string {
	switch a {
	case ActionPlayCard:
		return "PLAY_CARD"
	case ActionAttack:
		return "ATTACK"
	case ActionEndTurn:
		return "END_TURN"
	case ActionConcede:
		return "CONCEDE"
	default:
		return "UNKNOWN"
	}
}

// Action is one player-submitted intent against a match. Actions are
// transient: consumed by the processor, never stored. TargetID zero addresses
// the opposing player's face.
type Action struct {
	MatchID   string
	PlayerID  int32
	Type      ActionType
	CardID    *int32
	TargetID  *int32
	Position  *int32
	Timestamp time.Time
}

// Result reports the outcome of processing one action. Game-rule violations
// are failed results with a descriptive message, not errors; the caller may
// retry with a corrected action.
type Result struct {
	Success bool
	Message string
	Data    map[string]any
}

func successResult(message string) Result {
	return Result{Success: true, Message: message, Data: map[string]any{}}
}

func failureResult(message string) Result {
	return Result{Success: false, Message: message}
}
