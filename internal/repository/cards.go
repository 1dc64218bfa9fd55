package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/theduelx/duel-server-go/internal/card"
)

// CardRepository serves card templates from Postgres. It implements
// card.Catalog; the engine never sees the storage format.
type CardRepository struct {
	db *DB
}

// NewCardRepository creates a Postgres-backed card catalog.
func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{db: db}
}

const cardColumns = `id, name, description, mana_cost, attack, health, card_type, rarity, image_url`

// Lookup fetches one template with its effect definitions.
func (r *CardRepository) Lookup(ctx context.Context, id int32) (*card.Template, error) {
	row := r.db.pool.QueryRow(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)

	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, card.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query card %d: %w", id, err)
	}

	if err := r.loadEffects(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListByType returns all templates of one card type.
func (r *CardRepository) ListByType(ctx context.Context, cardType card.Type) ([]*card.Template, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE card_type = $1 ORDER BY id`, int32(cardType))
	if err != nil {
		return nil, fmt.Errorf("failed to query cards by type: %w", err)
	}
	defer rows.Close()

	return r.collectTemplates(ctx, rows)
}

// ListByRarity returns all templates of one rarity.
func (r *CardRepository) ListByRarity(ctx context.Context, rarity card.Rarity) ([]*card.Template, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE rarity = $1 ORDER BY id`, int32(rarity))
	if err != nil {
		return nil, fmt.Errorf("failed to query cards by rarity: %w", err)
	}
	defer rows.Close()

	return r.collectTemplates(ctx, rows)
}

// DefaultDeck returns the lowest-ID templates as the stand-in deck for
// players without a configured one.
func (r *CardRepository) DefaultDeck(ctx context.Context) ([]*card.Template, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT `+cardColumns+` FROM cards ORDER BY id LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("failed to query default deck: %w", err)
	}
	defer rows.Close()

	return r.collectTemplates(ctx, rows)
}

func (r *CardRepository) collectTemplates(ctx context.Context, rows pgx.Rows) ([]*card.Template, error) {
	templates := make([]*card.Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate card rows: %w", err)
	}

	for _, t := range templates {
		if err := r.loadEffects(ctx, t); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

func (r *CardRepository) loadEffects(ctx context.Context, t *card.Template) error {
	rows, err := r.db.pool.Query(ctx,
		`SELECT effect_type, trigger, magnitude, description
		 FROM card_effects WHERE card_id = $1 ORDER BY id`, t.ID)
	if err != nil {
		return fmt.Errorf("failed to query effects for card %d: %w", t.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			effectType int32
			trigger    int32
			effect     card.EffectDef
		)
		if err := rows.Scan(&effectType, &trigger, &effect.Magnitude, &effect.Text); err != nil {
			return fmt.Errorf("failed to scan effect row: %w", err)
		}
		effect.Type = card.EffectType(effectType)
		effect.Trigger = card.Trigger(trigger)
		t.Effects = append(t.Effects, effect)
	}
	return rows.Err()
}

func scanTemplate(row pgx.Row) (*card.Template, error) {
	var (
		t        card.Template
		cardType int32
		rarity   int32
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Text, &t.ManaCost, &t.Attack, &t.Health,
		&cardType, &rarity, &t.ImageURL); err != nil {
		return nil, err
	}
	t.Type = card.Type(cardType)
	t.Rarity = card.Rarity(rarity)
	return &t, nil
}
