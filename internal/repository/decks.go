package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/theduelx/duel-server-go/internal/card"
	"go.uber.org/zap"
)

// DeckRepository resolves a player's configured deck from Postgres into card
// templates. Players without a saved deck get the catalog default.
type DeckRepository struct {
	db      *DB
	catalog card.Catalog
	logger  *zap.Logger
}

// NewDeckRepository creates a Postgres-backed deck store.
func NewDeckRepository(db *DB, catalog card.Catalog, logger *zap.Logger) *DeckRepository {
	return &DeckRepository{db: db, catalog: catalog, logger: logger}
}

// DeckForPlayer loads the player's deck list and resolves every card ID
// through the catalog. Unknown IDs are skipped with a warning.
func (r *DeckRepository) DeckForPlayer(ctx context.Context, playerID int32) ([]*card.Template, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT card_id FROM player_decks WHERE player_id = $1 ORDER BY slot`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deck for player %d: %w", playerID, err)
	}
	defer rows.Close()

	cardIDs := make([]int32, 0)
	for rows.Next() {
		var cardID int32
		if err := rows.Scan(&cardID); err != nil {
			return nil, fmt.Errorf("failed to scan deck row: %w", err)
		}
		cardIDs = append(cardIDs, cardID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deck rows: %w", err)
	}

	if len(cardIDs) == 0 {
		return r.catalog.DefaultDeck(ctx)
	}

	deck := make([]*card.Template, 0, len(cardIDs))
	for _, id := range cardIDs {
		t, err := r.catalog.Lookup(ctx, id)
		if err != nil {
			if errors.Is(err, card.ErrNotFound) {
				r.logger.Warn("deck references unknown card",
					zap.Int32("player_id", playerID),
					zap.Int32("card_id", id),
				)
				continue
			}
			return nil, err
		}
		deck = append(deck, t)
	}
	return deck, nil
}
