package card

import (
	"context"
	"errors"
	"sort"
)

// ErrNotFound is returned when a card ID has no catalog entry.
var ErrNotFound = errors.New("card not found")

// defaultDeckSize is the number of cards handed to players without a deck.
const defaultDeckSize = 10

// Catalog resolves card templates. The engine only consumes this interface;
// storage lives behind it (built-in set or a database repository).
type Catalog interface {
	Lookup(ctx context.Context, id int32) (*Template, error)
	ListByType(ctx context.Context, cardType Type) ([]*Template, error)
	ListByRarity(ctx context.Context, rarity Rarity) ([]*Template, error)
	DefaultDeck(ctx context.Context) ([]*Template, error)
}

// DeckSource resolves a player's configured deck into catalog templates.
type DeckSource interface {
	DeckForPlayer(ctx context.Context, playerID int32) ([]*Template, error)
}

// StaticCatalog serves a fixed built-in card set. It backs the server when no
// database is configured and the seed set used by tests.
type StaticCatalog struct {
	byID map[int32]*Template
	ids  []int32
}

// NewStaticCatalog builds a catalog over the given templates. Passing none
// loads the built-in seed set.
func NewStaticCatalog(templates ...*Template) *StaticCatalog {
	if len(templates) == 0 {
		templates = seedTemplates()
	}

	c := &StaticCatalog{
		byID: make(map[int32]*Template, len(templates)),
		ids:  make([]int32, 0, len(templates)),
	}
	for _, t := range templates {
		if _, exists := c.byID[t.ID]; exists {
			continue
		}
		c.byID[t.ID] = t
		c.ids = append(c.ids, t.ID)
	}
	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })

	return c
}

func (c *StaticCatalog) Lookup(ctx context.Context, id int32) (*Template, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (c *StaticCatalog) ListByType(ctx context.Context, cardType Type) ([]*Template, error) {
	result := make([]*Template, 0)
	for _, id := range c.ids {
		if t := c.byID[id]; t.Type == cardType {
			result = append(result, t)
		}
	}
	return result, nil
}

func (c *StaticCatalog) ListByRarity(ctx context.Context, rarity Rarity) ([]*Template, error) {
	result := make([]*Template, 0)
	for _, id := range c.ids {
		if t := c.byID[id]; t.Rarity == rarity {
			result = append(result, t)
		}
	}
	return result, nil
}

// DefaultDeck returns the lowest-ID templates, repeated if the set is smaller
// than a full deck.
func (c *StaticCatalog) DefaultDeck(ctx context.Context) ([]*Template, error) {
	if len(c.ids) == 0 {
		return nil, nil
	}

	deck := make([]*Template, 0, defaultDeckSize)
	for i := 0; len(deck) < defaultDeckSize; i++ {
		deck = append(deck, c.byID[c.ids[i%len(c.ids)]])
	}
	return deck, nil
}

// CatalogDeckSource hands every player the catalog default deck. It stands in
// for the real deck store when no database is configured.
type CatalogDeckSource struct {
	Catalog Catalog
}

func (s CatalogDeckSource) DeckForPlayer(ctx context.Context, playerID int32) ([]*Template, error) {
	return s.Catalog.DefaultDeck(ctx)
}

// seedTemplates is the built-in card set served when no database is
// configured. IDs are stable; the import script loads the full catalog.
func seedTemplates() []*Template {
	return []*Template{
		{
			ID: 1, Name: "Novice Warrior", Text: "A young and determined fighter.",
			ManaCost: 1, Attack: 2, Health: 1,
			Type: TypeCreature, Rarity: RarityCommon,
			ImageURL: "/images/cards/novice-warrior.png",
		},
		{
			ID: 2, Name: "Flame Mage", Text: "Hurls devastating fireballs.",
			ManaCost: 2, Attack: 3, Health: 2,
			Type: TypeCreature, Rarity: RarityUncommon,
			ImageURL: "/images/cards/flame-mage.png",
		},
		{
			ID: 3, Name: "Stone Sentinel", Text: "It has guarded the gate for a century.",
			ManaCost: 3, Attack: 2, Health: 5,
			Type: TypeCreature, Rarity: RarityCommon,
			ImageURL: "/images/cards/stone-sentinel.png",
		},
		{
			ID: 4, Name: "Shadow Assassin", Text: "Strikes before the torch flickers.",
			ManaCost: 4, Attack: 5, Health: 3,
			Type: TypeCreature, Rarity: RarityRare,
			ImageURL: "/images/cards/shadow-assassin.png",
		},
		{
			ID: 5, Name: "Elder Dragon", Text: "The mountains remember its first flight.",
			ManaCost: 8, Attack: 8, Health: 8,
			Type: TypeCreature, Rarity: RarityLegendary,
			ImageURL: "/images/cards/elder-dragon.png",
		},
		{
			ID: 6, Name: "Fireball", Text: "Deal 3 damage.",
			ManaCost: 2, Type: TypeSpell, Rarity: RarityCommon,
			ImageURL: "/images/cards/fireball.png",
			Effects: []EffectDef{
				{Type: EffectDamage, Trigger: TriggerOnPlay, Magnitude: 3, Text: "Deal 3 damage."},
			},
		},
		{
			ID: 7, Name: "Healing Light", Text: "Restore 4 health.",
			ManaCost: 2, Type: TypeSpell, Rarity: RarityCommon,
			ImageURL: "/images/cards/healing-light.png",
			Effects: []EffectDef{
				{Type: EffectHeal, Trigger: TriggerOnPlay, Magnitude: 4, Text: "Restore 4 health."},
			},
		},
		{
			ID: 8, Name: "Arcane Insight", Text: "Draw 2 cards.",
			ManaCost: 3, Type: TypeSpell, Rarity: RarityUncommon,
			ImageURL: "/images/cards/arcane-insight.png",
			Effects: []EffectDef{
				{Type: EffectDrawCard, Trigger: TriggerOnPlay, Magnitude: 2, Text: "Draw 2 cards."},
			},
		},
		{
			ID: 9, Name: "Meteor Storm", Text: "Deal 6 damage.",
			ManaCost: 5, Type: TypeSpell, Rarity: RarityEpic,
			ImageURL: "/images/cards/meteor-storm.png",
			Effects: []EffectDef{
				{Type: EffectDamage, Trigger: TriggerOnPlay, Magnitude: 6, Text: "Deal 6 damage."},
			},
		},
		{
			ID: 10, Name: "Obsidian Golem", Text: "Forged rather than born.",
			ManaCost: 5, Attack: 4, Health: 6,
			Type: TypeArtifact, Rarity: RarityRare,
			ImageURL: "/images/cards/obsidian-golem.png",
		},
		{
			ID: 11, Name: "Sunforged Blade", Text: "An heirloom of the first duelists.",
			ManaCost: 3, Attack: 3, Health: 2,
			Type: TypeArtifact, Rarity: RarityUncommon,
			ImageURL: "/images/cards/sunforged-blade.png",
		},
		{
			ID: 12, Name: "Grave Whisper", Text: "Deal 2 damage.",
			ManaCost: 1, Type: TypeSpell, Rarity: RarityCommon,
			ImageURL: "/images/cards/grave-whisper.png",
			Effects: []EffectDef{
				{Type: EffectDamage, Trigger: TriggerOnPlay, Magnitude: 2, Text: "Deal 2 damage."},
			},
		},
	}
}
