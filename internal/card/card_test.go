package card

import (
	"context"
	"errors"
	"testing"
)

func TestInstantiateCopiesTemplate(t *testing.T) {
	tpl := &Template{
		ID: 1, Name: "Novice Warrior", ManaCost: 1, Attack: 2, Health: 1,
		Type: TypeCreature, Rarity: RarityCommon,
	}

	inst := tpl.Instantiate()

	if inst.ID != 1 || inst.Attack != 2 || inst.Health != 1 {
		t.Fatalf("instance does not mirror template: %+v", inst)
	}

	inst.Health = 99
	inst.Attack = 42

	if tpl.Health != 1 || tpl.Attack != 2 {
		t.Error("mutating an instance must not touch the template")
	}
}

func TestInstantiateDoesNotShareEffects(t *testing.T) {
	tpl := &Template{
		ID: 6, Name: "Fireball", ManaCost: 2, Type: TypeSpell,
		Effects: []EffectDef{
			{Type: EffectDamage, Trigger: TriggerOnPlay, Magnitude: 3},
		},
	}

	first := tpl.Instantiate()
	second := tpl.Instantiate()

	first.Effects[0].Magnitude = 100

	if second.Effects[0].Magnitude != 3 {
		t.Error("instances must not share effect storage")
	}
	if tpl.Effects[0].Magnitude != 3 {
		t.Error("template effects must stay untouched")
	}
}

func TestStaticCatalogLookup(t *testing.T) {
	c := NewStaticCatalog()
	ctx := context.Background()

	tpl, err := c.Lookup(ctx, 1)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if tpl.Name != "Novice Warrior" {
		t.Errorf("unexpected card: %s", tpl.Name)
	}

	_, err = c.Lookup(ctx, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStaticCatalogListByType(t *testing.T) {
	c := NewStaticCatalog()
	ctx := context.Background()

	spells, err := c.ListByType(ctx, TypeSpell)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(spells) == 0 {
		t.Fatal("expected spells in the built-in set")
	}
	for _, s := range spells {
		if s.Type != TypeSpell {
			t.Errorf("card %d is not a spell", s.ID)
		}
	}
}

func TestStaticCatalogListByRarity(t *testing.T) {
	c := NewStaticCatalog()
	ctx := context.Background()

	legendaries, err := c.ListByRarity(ctx, RarityLegendary)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, l := range legendaries {
		if l.Rarity != RarityLegendary {
			t.Errorf("card %d is not legendary", l.ID)
		}
	}
}

func TestStaticCatalogDefaultDeckSize(t *testing.T) {
	c := NewStaticCatalog()

	deck, err := c.DefaultDeck(context.Background())
	if err != nil {
		t.Fatalf("default deck failed: %v", err)
	}
	if len(deck) != defaultDeckSize {
		t.Errorf("expected %d cards, got %d", defaultDeckSize, len(deck))
	}
}

func TestStaticCatalogDefaultDeckRepeatsSmallSet(t *testing.T) {
	only := &Template{ID: 1, Name: "Solo", ManaCost: 1, Type: TypeCreature}
	c := NewStaticCatalog(only)

	deck, err := c.DefaultDeck(context.Background())
	if err != nil {
		t.Fatalf("default deck failed: %v", err)
	}
	if len(deck) != defaultDeckSize {
		t.Fatalf("expected %d cards, got %d", defaultDeckSize, len(deck))
	}
	for _, tpl := range deck {
		if tpl.ID != 1 {
			t.Errorf("expected only card 1 in the deck, got %d", tpl.ID)
		}
	}
}

func TestStaticCatalogDeduplicatesIDs(t *testing.T) {
	a := &Template{ID: 1, Name: "First"}
	b := &Template{ID: 1, Name: "Duplicate"}
	c := NewStaticCatalog(a, b)

	tpl, err := c.Lookup(context.Background(), 1)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if tpl.Name != "First" {
		t.Errorf("expected the first registration to win, got %s", tpl.Name)
	}
}

func TestCatalogDeckSource(t *testing.T) {
	c := NewStaticCatalog()
	src := CatalogDeckSource{Catalog: c}

	deck, err := src.DeckForPlayer(context.Background(), 42)
	if err != nil {
		t.Fatalf("deck source failed: %v", err)
	}
	if len(deck) != defaultDeckSize {
		t.Errorf("expected the default deck, got %d cards", len(deck))
	}
}

func TestEnumStrings(t *testing.T) {
	if TypeCreature.String() != "CREATURE" || TypeSpell.String() != "SPELL" || TypeArtifact.String() != "ARTIFACT" {
		t.Error("unexpected type strings")
	}
	if Type(99).String() != "UNKNOWN" {
		t.Error("out-of-range type must stringify as UNKNOWN")
	}
	if RarityLegendary.String() != "LEGENDARY" {
		t.Error("unexpected rarity string")
	}
	if TriggerOnPlay.String() != "ON_PLAY" {
		t.Error("unexpected trigger string")
	}
	if EffectDamage.String() != "DAMAGE" {
		t.Error("unexpected effect string")
	}
}
