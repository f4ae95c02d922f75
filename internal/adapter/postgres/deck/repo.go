// Package deck implements the cloud Deck repository using PostgreSQL.
package deck

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards/internal/domain"
)

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const deckColumns = `id, name, type, user_id, created_at, updated_at`

const listByUserSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE user_id = $1
ORDER BY created_at, id`

const getByIDSQL = `SELECT ` + deckColumns + ` FROM decks WHERE id = $1`

const createSQL = `
INSERT INTO decks (id, name, type, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + deckColumns

const replaceSQL = `
UPDATE decks
SET name = $2, type = $3, user_id = $4, created_at = $5, updated_at = $6
WHERE id = $1
RETURNING ` + deckColumns

const deleteSQL = `DELETE FROM decks WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns every deck owned by userID, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	q := postgres.Conn(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	decks := []domain.Deck{}
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// GetByID returns a deck regardless of owner. Ownership is the caller's check.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Deck, error) {
	q := postgres.Conn(ctx, r.pool)

	d, err := scanDeck(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "deck", id)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a deck. A duplicate id yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	q := postgres.Conn(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		d.ID, d.Name, string(d.Type), d.UserID,
		d.Created.UTC().Truncate(time.Microsecond),
		d.Updated.UTC().Truncate(time.Microsecond),
	)
	created, err := scanDeck(row)
	if err != nil {
		return nil, postgres.MapError(err, "deck", d.ID)
	}
	return created, nil
}

// Replace overwrites every column of an existing deck.
// Returns domain.ErrNotFound if the deck does not exist.
func (r *Repo) Replace(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	q := postgres.Conn(ctx, r.pool)

	row := q.QueryRow(ctx, replaceSQL,
		d.ID, d.Name, string(d.Type), d.UserID,
		d.Created.UTC().Truncate(time.Microsecond),
		d.Updated.UTC().Truncate(time.Microsecond),
	)
	updated, err := scanDeck(row)
	if err != nil {
		return nil, postgres.MapError(err, "deck", d.ID)
	}
	return updated, nil
}

// Delete removes a deck row. Cards are not touched.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.Conn(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "deck", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanDeck(row pgx.Row) (*domain.Deck, error) {
	var (
		d   domain.Deck
		typ string
	)
	if err := row.Scan(&d.ID, &d.Name, &typ, &d.UserID, &d.Created, &d.Updated); err != nil {
		return nil, err
	}
	d.Type = domain.DeckType(typ)
	return &d, nil
}
