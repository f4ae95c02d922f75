// Package catalog implements the public deck catalog repository using PostgreSQL.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards/internal/domain"
)

// Repo provides public catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const listDecksSQL = `
SELECT d.id, d.name, COALESCE(d.downloads, 0), count(c.id)
FROM public_decks d
LEFT JOIN public_cards c ON c.deck_id = d.id
GROUP BY d.id, d.name, d.downloads
ORDER BY d.name, d.id`

const incrementDownloadsSQL = `
UPDATE public_decks
SET downloads = COALESCE(downloads, 0) + 1
WHERE id = $1`

const listCardsSQL = `
SELECT id, deck_id, front, back, images
FROM public_cards
WHERE deck_id = $1
ORDER BY id`

const deleteAllCardsSQL = `DELETE FROM public_cards`

const deleteAllDecksSQL = `DELETE FROM public_decks`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListDecks returns every public deck with its live card count.
// A missing download counter reads as zero.
func (r *Repo) ListDecks(ctx context.Context) ([]domain.PublicDeck, error) {
	q := postgres.Conn(ctx, r.pool)

	rows, err := q.Query(ctx, listDecksSQL)
	if err != nil {
		return nil, fmt.Errorf("list public decks: %w", err)
	}
	defer rows.Close()

	decks := []domain.PublicDeck{}
	for rows.Next() {
		var d domain.PublicDeck
		if err := rows.Scan(&d.ID, &d.Name, &d.Downloads, &d.Cards); err != nil {
			return nil, fmt.Errorf("scan public deck: %w", err)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list public decks: %w", err)
	}
	return decks, nil
}

// ListCards returns the cards of a public deck.
func (r *Repo) ListCards(ctx context.Context, deckID string) ([]domain.PublicCard, error) {
	q := postgres.Conn(ctx, r.pool)

	rows, err := q.Query(ctx, listCardsSQL, deckID)
	if err != nil {
		return nil, fmt.Errorf("list public cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.PublicCard{}
	for rows.Next() {
		var (
			c          domain.PublicCard
			imagesJSON []byte
		)
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &imagesJSON); err != nil {
			return nil, fmt.Errorf("scan public card: %w", err)
		}
		c.Images = map[string]string{}
		if len(imagesJSON) > 0 {
			if err := json.Unmarshal(imagesJSON, &c.Images); err != nil {
				return nil, fmt.Errorf("public card %s: unmarshal images: %w", c.ID, err)
			}
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list public cards: %w", err)
	}
	return cards, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// IncrementDownloads adds exactly one to a deck's download counter.
// Returns domain.ErrNotFound if the deck does not exist.
func (r *Repo) IncrementDownloads(ctx context.Context, deckID string) error {
	q := postgres.Conn(ctx, r.pool)

	ct, err := q.Exec(ctx, incrementDownloadsSQL, deckID)
	if err != nil {
		return postgres.MapError(err, "public deck", deckID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("public deck %s: %w", deckID, domain.ErrNotFound)
	}
	return nil
}

// ReplaceAll deletes the whole catalog and bulk loads decks and cards with
// COPY. Download counters start out NULL. Run it inside a transaction so
// readers never see an empty catalog.
func (r *Repo) ReplaceAll(ctx context.Context, decks []domain.PublicDeck, cards []domain.PublicCard) error {
	q := postgres.Conn(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteAllCardsSQL); err != nil {
		return fmt.Errorf("delete public cards: %w", err)
	}
	if _, err := q.Exec(ctx, deleteAllDecksSQL); err != nil {
		return fmt.Errorf("delete public decks: %w", err)
	}

	deckRows := make([][]any, 0, len(decks))
	for _, d := range decks {
		deckRows = append(deckRows, []any{d.ID, d.Name})
	}
	if _, err := q.CopyFrom(ctx, pgx.Identifier{"public_decks"}, []string{"id", "name"}, pgx.CopyFromRows(deckRows)); err != nil {
		return postgres.MapError(err, "public decks", fmt.Sprintf("copy of %d", len(decks)))
	}

	cardRows := make([][]any, 0, len(cards))
	for _, c := range cards {
		images := c.Images
		if images == nil {
			images = map[string]string{}
		}
		imagesJSON, err := json.Marshal(images)
		if err != nil {
			return fmt.Errorf("public card %s: marshal images: %w", c.ID, err)
		}
		cardRows = append(cardRows, []any{c.ID, c.DeckID, c.Front, c.Back, string(imagesJSON)})
	}
	_, err := q.CopyFrom(ctx, pgx.Identifier{"public_cards"},
		[]string{"id", "deck_id", "front", "back", "images"}, pgx.CopyFromRows(cardRows))
	if err != nil {
		return postgres.MapError(err, "public cards", fmt.Sprintf("copy of %d", len(cards)))
	}

	return nil
}
