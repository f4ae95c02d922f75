// Package card implements the cloud Card repository using PostgreSQL.
// Fixed queries are SQL constants; queries over a variable set of decks and
// the bulk upsert are built with squirrel.
package card

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards/internal/domain"
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var cardColumnList = []string{
	"id", "deck_id", "created_at", "updated_at", "due",
	"stability", "difficulty", "elapsed_days", "scheduled_days", "reps", "lapses",
	"state", "last_review", "front", "back", "images",
}

const cardColumns = `id, deck_id, created_at, updated_at, due,
       stability, difficulty, elapsed_days, scheduled_days, reps, lapses,
       state, last_review, front, back, images`

const getByIDSQL = `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

const listByDeckSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE deck_id = $1
ORDER BY created_at, id`

const createSQL = `
INSERT INTO cards (` + cardColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING ` + cardColumns

const replaceSQL = `
UPDATE cards
SET deck_id = $2, created_at = $3, updated_at = $4, due = $5,
    stability = $6, difficulty = $7, elapsed_days = $8, scheduled_days = $9,
    reps = $10, lapses = $11, state = $12, last_review = $13,
    front = $14, back = $15, images = $16
WHERE id = $1
RETURNING ` + cardColumns

const deleteSQL = `DELETE FROM cards WHERE id = $1`

const deleteByDeckSQL = `DELETE FROM cards WHERE deck_id = $1`

const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
    deck_id = EXCLUDED.deck_id, created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at, due = EXCLUDED.due,
    stability = EXCLUDED.stability, difficulty = EXCLUDED.difficulty,
    elapsed_days = EXCLUDED.elapsed_days, scheduled_days = EXCLUDED.scheduled_days,
    reps = EXCLUDED.reps, lapses = EXCLUDED.lapses, state = EXCLUDED.state,
    last_review = EXCLUDED.last_review, front = EXCLUDED.front,
    back = EXCLUDED.back, images = EXCLUDED.images
WHERE NOT EXISTS (
    SELECT 1 FROM decks cur, decks dst
    WHERE cur.id = cards.deck_id AND dst.id = EXCLUDED.deck_id
      AND cur.user_id IS DISTINCT FROM dst.user_id)`

// maxUpsertRows keeps one upsert statement under the protocol's 65535 bind
// parameter limit.
var maxUpsertRows = 65535 / len(cardColumnList)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	q := postgres.Conn(ctx, r.pool)

	c, err := scanCard(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return c, nil
}

// ListByDeck returns the cards tagged with deckID, oldest first.
func (r *Repo) ListByDeck(ctx context.Context, deckID string) ([]domain.Card, error) {
	q := postgres.Conn(ctx, r.pool)

	rows, err := q.Query(ctx, listByDeckSQL, deckID)
	if err != nil {
		return nil, fmt.Errorf("list cards of deck %s: %w", deckID, err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// ListByDecks returns the cards of every deck in deckIDs. An empty slice
// returns no cards without touching the database.
func (r *Repo) ListByDecks(ctx context.Context, deckIDs []string) ([]domain.Card, error) {
	if len(deckIDs) == 0 {
		return []domain.Card{}, nil
	}

	query, args, err := psql.Select(cardColumnList...).
		From("cards").
		Where(sq.Eq{"deck_id": deckIDs}).
		OrderBy("deck_id", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	q := postgres.Conn(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a card. A duplicate id yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	args, err := cardArgs(c)
	if err != nil {
		return nil, err
	}

	q := postgres.Conn(ctx, r.pool)
	created, err := scanCard(q.QueryRow(ctx, createSQL, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", c.ID)
	}
	return created, nil
}

// Replace overwrites every column of an existing card.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) Replace(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	args, err := cardArgs(c)
	if err != nil {
		return nil, err
	}

	q := postgres.Conn(ctx, r.pool)
	updated, err := scanCard(q.QueryRow(ctx, replaceSQL, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", c.ID)
	}
	return updated, nil
}

// Delete removes a card. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.Conn(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "card", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByDeck removes every card tagged with deckID and returns the count.
func (r *Repo) DeleteByDeck(ctx context.Context, deckID string) (int64, error) {
	q := postgres.Conn(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteByDeckSQL, deckID)
	if err != nil {
		return 0, postgres.MapError(err, "deck cards", deckID)
	}
	return ct.RowsAffected(), nil
}

// UpsertMany writes cards in as few statements as the bind parameter limit
// allows, replacing rows whose id already exists. Repeated ids collapse to
// the last occurrence. A row whose id belongs to a card in another owner's
// deck is left untouched and reported as domain.ErrForbidden after the
// remaining rows are written.
func (r *Repo) UpsertMany(ctx context.Context, cards []domain.Card) error {
	cards = lastByID(cards)
	if len(cards) == 0 {
		return nil
	}

	q := postgres.Conn(ctx, r.pool)

	var written int64
	for start := 0; start < len(cards); start += maxUpsertRows {
		chunk := cards[start:min(start+maxUpsertRows, len(cards))]

		b := psql.Insert("cards").Columns(cardColumnList...)
		for i := range chunk {
			args, err := cardArgs(&chunk[i])
			if err != nil {
				return err
			}
			b = b.Values(args...)
		}

		query, args, err := b.Suffix(upsertSuffix).ToSql()
		if err != nil {
			return fmt.Errorf("build upsert cards query: %w", err)
		}

		ct, err := q.Exec(ctx, query, args...)
		if err != nil {
			return postgres.MapError(err, "cards", fmt.Sprintf("batch of %d", len(chunk)))
		}
		written += ct.RowsAffected()
	}

	if skipped := int64(len(cards)) - written; skipped > 0 {
		return fmt.Errorf("cards: %d ids belong to another owner: %w", skipped, domain.ErrForbidden)
	}
	return nil
}

// lastByID drops repeated ids, keeping the first position and the last value.
func lastByID(cards []domain.Card) []domain.Card {
	pos := make(map[string]int, len(cards))
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if i, ok := pos[c.ID]; ok {
			out[i] = c
			continue
		}
		pos[c.ID] = len(out)
		out = append(out, c)
	}
	return out
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func cardArgs(c *domain.Card) ([]any, error) {
	images := c.Images
	if images == nil {
		images = map[string]string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("card %s: marshal images: %w", c.ID, err)
	}

	var lastReview *time.Time
	if c.LastReview != nil {
		t := c.LastReview.UTC().Truncate(time.Microsecond)
		lastReview = &t
	}

	return []any{
		c.ID,
		c.DeckID,
		c.Created.UTC().Truncate(time.Microsecond),
		c.Updated.UTC().Truncate(time.Microsecond),
		c.Due.UTC().Truncate(time.Microsecond),
		c.Stability,
		c.Difficulty,
		c.ElapsedDays,
		c.ScheduledDays,
		c.Reps,
		c.Lapses,
		int(c.State),
		lastReview,
		c.Front,
		c.Back,
		imagesJSON,
	}, nil
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var (
		c          domain.Card
		state      int16
		imagesJSON []byte
	)

	err := row.Scan(
		&c.ID, &c.DeckID, &c.Created, &c.Updated, &c.Due,
		&c.Stability, &c.Difficulty, &c.ElapsedDays, &c.ScheduledDays, &c.Reps, &c.Lapses,
		&state, &c.LastReview, &c.Front, &c.Back, &imagesJSON,
	)
	if err != nil {
		return nil, err
	}

	c.State = domain.CardState(state)
	c.Images = map[string]string{}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &c.Images); err != nil {
			return nil, fmt.Errorf("card %s: unmarshal images: %w", c.ID, err)
		}
	}
	return &c, nil
}

func scanCards(rows pgx.Rows) ([]domain.Card, error) {
	cards := []domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}
