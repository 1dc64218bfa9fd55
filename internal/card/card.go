package card

// Type classifies a card template.
type Type int32

const (
	TypeCreature Type = iota
	TypeSpell
	TypeArtifact
)

func (t Type) String() string {
	switch t {
	case TypeCreature:
		return "CREATURE"
	case TypeSpell:
		return "SPELL"
	case TypeArtifact:
		return "ARTIFACT"
	default:
		return "UNKNOWN"
	}
}

// Rarity classifies how a card is distributed in the collection.
type Rarity int32

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "COMMON"
	case RarityUncommon:
		return "UNCOMMON"
	case RarityRare:
		return "RARE"
	case RarityEpic:
		return "EPIC"
	case RarityLegendary:
		return "LEGENDARY"
	default:
		return "UNKNOWN"
	}
}

// EffectType identifies what a card effect does when it fires.
type EffectType int32

const (
	EffectDamage EffectType = iota
	EffectHeal
	EffectBuffAttack
	EffectBuffHealth
	EffectDrawCard
	EffectDiscardCard
	EffectTaunt
	EffectCharge
	EffectDivineShield
)

func (e EffectType) String() string {
	switch e {
	case EffectDamage:
		return "DAMAGE"
	case EffectHeal:
		return "HEAL"
	case EffectBuffAttack:
		return "BUFF_ATTACK"
	case EffectBuffHealth:
		return "BUFF_HEALTH"
	case EffectDrawCard:
		return "DRAW_CARD"
	case EffectDiscardCard:
		return "DISCARD_CARD"
	case EffectTaunt:
		return "TAUNT"
	case EffectCharge:
		return "CHARGE"
	case EffectDivineShield:
		return "DIVINE_SHIELD"
	default:
		return "UNKNOWN"
	}
}

// Trigger identifies the event that activates a card effect.
type Trigger int32

const (
	TriggerOnPlay Trigger = iota
	TriggerOnDeath
	TriggerOnAttack
	TriggerOnTurnStart
	TriggerOnTurnEnd
)

func (t Trigger) String() string {
	switch t {
	case TriggerOnPlay:
		return "ON_PLAY"
	case TriggerOnDeath:
		return "ON_DEATH"
	case TriggerOnAttack:
		return "ON_ATTACK"
	case TriggerOnTurnStart:
		return "ON_TURN_START"
	case TriggerOnTurnEnd:
		return "ON_TURN_END"
	default:
		return "UNKNOWN"
	}
}

// EffectDef is an immutable effect definition attached to a card template.
type EffectDef struct {
	Type      EffectType
	Trigger   Trigger
	Magnitude int
	Text      string
}

// Template is an immutable catalog definition of a card. Templates are shared
// freely across matches; only instances produced by Instantiate are mutated.
type Template struct {
	ID       int32
	Name     string
	Text     string
	ManaCost int
	Attack   int
	Health   int
	Type     Type
	Rarity   Rarity
	ImageURL string
	Effects  []EffectDef
}

// Instance is a per-match mutable copy of a template. The ID is the template
// ID (actions address cards by it); Attack and Health are the live stats and
// belong exclusively to the board holding the instance.
type Instance struct {
	ID       int32
	Name     string
	Text     string
	ManaCost int
	Attack   int
	Health   int
	Type     Type
	Rarity   Rarity
	Effects  []EffectDef
}

// Instantiate produces a fresh, independently owned instance of the template.
// The effects slice is copied so no two instances share backing storage.
func (t *Template) Instantiate() *Instance {
	effects := make([]EffectDef, len(t.Effects))
	copy(effects, t.Effects)

	return &Instance{
		ID:       t.ID,
		Name:     t.Name,
		Text:     t.Text,
		ManaCost: t.ManaCost,
		Attack:   t.Attack,
		Health:   t.Health,
		Type:     t.Type,
		Rarity:   t.Rarity,
		Effects:  effects,
	}
}
