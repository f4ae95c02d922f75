// Package local is the device-resident store used in offline mode. Decks and
// cards live in a SQLite file opened once per process and closed by the caller.
package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/flashcards/internal/adapter/local/migrations"
	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/temporal"
)

// Store is a handle on the device database.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for due counting. The returned instant's
// location decides where a day starts.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the SQLite database at path and applies
// pending migrations. Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("local: open %s: %w", path, err)
	}
	// One writer; also keeps a :memory: database alive on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrate(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := checkInstantColumns(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("local: goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("local: migrate: %w", err)
	}
	return nil
}

// checkInstantColumns verifies that every card field in temporal.LocalFields
// is an INTEGER column, the encoding temporal.Millis reads and writes.
func checkInstantColumns(ctx context.Context, db *sqlx.DB) error {
	var cols []struct {
		Name string `db:"name"`
		Type string `db:"type"`
	}
	if err := db.SelectContext(ctx, &cols, `SELECT name, type FROM pragma_table_info('cards')`); err != nil {
		return fmt.Errorf("local: inspect cards schema: %w", err)
	}

	types := make(map[string]string, len(cols))
	for _, c := range cols {
		types[c.Name] = strings.ToUpper(c.Type)
	}
	for _, field := range temporal.LocalFields {
		if typ, ok := types[field]; !ok || typ != "INTEGER" {
			return fmt.Errorf("local: cards.%s must be an INTEGER column, got %q", field, typ)
		}
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const deckColumns = `id, name, type, created, updated`

const cardColumns = `id, deck_id, created, updated, due, stability, difficulty,
       elapsed_days, scheduled_days, reps, lapses, state, last_review,
       front, back, images`

const (
	getAllDecksSQL = `SELECT ` + deckColumns + ` FROM decks ORDER BY created, id`
	getDeckSQL     = `SELECT ` + deckColumns + ` FROM decks WHERE id = ?`
	insertDeckSQL  = `INSERT INTO decks (` + deckColumns + `) VALUES (:id, :name, :type, :created, :updated)`
	putDeckSQL     = `INSERT OR REPLACE INTO decks (` + deckColumns + `) VALUES (:id, :name, :type, :created, :updated)`
	deleteDeckSQL  = `DELETE FROM decks WHERE id = ?`
)

const (
	getAllCardsSQL     = `SELECT ` + cardColumns + ` FROM cards ORDER BY created, id`
	getDeckCardsSQL    = `SELECT ` + cardColumns + ` FROM cards INDEXED BY cards_deck_index WHERE deck_id = ? ORDER BY created, id`
	getDeckCardIDsSQL  = `SELECT id FROM cards INDEXED BY cards_deck_index WHERE deck_id = ?`
	getCardSQL         = `SELECT ` + cardColumns + ` FROM cards WHERE id = ?`
	deleteCardSQL      = `DELETE FROM cards WHERE id = ?`
	cardValuesTemplate = `VALUES (:id, :deck_id, :created, :updated, :due, :stability, :difficulty,
       :elapsed_days, :scheduled_days, :reps, :lapses, :state, :last_review,
       :front, :back, :images)`
	insertCardSQL = `INSERT INTO cards (` + cardColumns + `) ` + cardValuesTemplate
	putCardSQL    = `INSERT OR REPLACE INTO cards (` + cardColumns + `) ` + cardValuesTemplate
)

// ---------------------------------------------------------------------------
// Decks
// ---------------------------------------------------------------------------

// GetAllDecks returns every local deck.
func (s *Store) GetAllDecks(ctx context.Context) ([]domain.Deck, error) {
	var rows []deckRow
	if err := s.db.SelectContext(ctx, &rows, getAllDecksSQL); err != nil {
		return nil, fmt.Errorf("local: get decks: %w", err)
	}
	decks := make([]domain.Deck, 0, len(rows))
	for _, r := range rows {
		decks = append(decks, r.toDomain())
	}
	return decks, nil
}

// GetDeck returns a deck by id or domain.ErrNotFound.
func (s *Store) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	var r deckRow
	if err := s.db.GetContext(ctx, &r, getDeckSQL, id); err != nil {
		return nil, mapError(err, "deck", id)
	}
	d := r.toDomain()
	return &d, nil
}

// CreateDeck adds a deck. The stored type is always local. A duplicate id
// yields domain.ErrAlreadyExists.
func (s *Store) CreateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error) {
	row := fromDeck(d)
	if _, err := s.db.NamedExecContext(ctx, insertDeckSQL, row); err != nil {
		return nil, mapError(err, "deck", d.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateDeck writes the whole deck, inserting it if absent.
func (s *Store) UpdateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error) {
	row := fromDeck(d)
	if _, err := s.db.NamedExecContext(ctx, putDeckSQL, row); err != nil {
		return nil, mapError(err, "deck", d.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// DeleteDeck removes every card of the deck one by one, then the deck.
// The steps are not atomic: a failure part way leaves the remaining cards
// and the deck in place. Deleting a missing deck is not an error.
func (s *Store) DeleteDeck(ctx context.Context, id string) error {
	var cardIDs []string
	if err := s.db.SelectContext(ctx, &cardIDs, getDeckCardIDsSQL, id); err != nil {
		return fmt.Errorf("local: list cards of deck %s: %w", id, err)
	}
	for _, cardID := range cardIDs {
		if err := s.DeleteCard(ctx, cardID); err != nil {
			return err
		}
	}
	if _, err := s.db.ExecContext(ctx, deleteDeckSQL, id); err != nil {
		return fmt.Errorf("local: delete deck %s: %w", id, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

// GetAllCards returns every local card.
func (s *Store) GetAllCards(ctx context.Context) ([]domain.Card, error) {
	return s.selectCards(ctx, getAllCardsSQL)
}

// GetAllCardsFromDeck returns the cards of one deck through the deck index.
func (s *Store) GetAllCardsFromDeck(ctx context.Context, deckID string) ([]domain.Card, error) {
	return s.selectCards(ctx, getDeckCardsSQL, deckID)
}

// GetCard returns a card by id or domain.ErrNotFound.
func (s *Store) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	var r cardRow
	if err := s.db.GetContext(ctx, &r, getCardSQL, id); err != nil {
		return nil, mapError(err, "card", id)
	}
	c := r.toDomain()
	return &c, nil
}

// CreateCard adds a card. A duplicate id yields domain.ErrAlreadyExists.
func (s *Store) CreateCard(ctx context.Context, c domain.Card) (*domain.Card, error) {
	if _, err := s.db.NamedExecContext(ctx, insertCardSQL, fromCard(c)); err != nil {
		return nil, mapError(err, "card", c.ID)
	}
	return &c, nil
}

// UpdateCard writes the whole card, inserting it if absent.
func (s *Store) UpdateCard(ctx context.Context, c domain.Card) (*domain.Card, error) {
	if _, err := s.db.NamedExecContext(ctx, putCardSQL, fromCard(c)); err != nil {
		return nil, mapError(err, "card", c.ID)
	}
	return &c, nil
}

// DeleteCard removes a card. Deleting a missing card is not an error.
func (s *Store) DeleteCard(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, deleteCardSQL, id); err != nil {
		return fmt.Errorf("local: delete card %s: %w", id, err)
	}
	return nil
}

// GetCardCounts aggregates the due cards of every local deck as of now.
func (s *Store) GetCardCounts(ctx context.Context) (domain.CardCounts, error) {
	cards, err := s.GetAllCards(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CountDue(cards, s.now()), nil
}

func (s *Store) selectCards(ctx context.Context, query string, args ...any) ([]domain.Card, error) {
	var rows []cardRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("local: get cards: %w", err)
	}
	cards := make([]domain.Card, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, r.toDomain())
	}
	return cards, nil
}

// mapError converts SQLite errors to domain errors.
func mapError(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT:
			if strings.Contains(se.Error(), "UNIQUE constraint failed") {
				return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
			}
		}
	}
	return fmt.Errorf("local: %s %s: %w", entity, id, err)
}
