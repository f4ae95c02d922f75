package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "$2a$04$seeded.hash.not.used.for.login",
		Created:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.Created,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedSession creates a session for userID expiring at expires.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, expires time.Time) domain.Session {
	t.Helper()

	s := domain.Session{
		ID:      uuid.New(),
		UserID:  userID,
		Created: time.Now().UTC().Truncate(time.Microsecond),
		Expires: expires.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.UserID, s.Created, s.Expires,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}

	return s
}

// SeedDeck creates a cloud deck owned by userID.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Deck {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.NewDeck("deck-"+uniqueSuffix(), "Deck "+uniqueSuffix(), domain.DeckTypeCloud, now)
	d.UserID = &userID

	_, err := pool.Exec(context.Background(),
		`INSERT INTO decks (id, name, type, user_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.Name, string(d.Type), d.UserID, d.Created, d.Updated,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}

	return d
}

// SeedCard creates a New card in deckID, due now.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deckID string) domain.Card {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.NewCard("card-"+uniqueSuffix(), deckID, "front "+uniqueSuffix(), "back", map[string]string{}, now)

	images, err := json.Marshal(c.Images)
	if err != nil {
		t.Fatalf("testhelper: SeedCard marshal images: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO cards (id, deck_id, created_at, updated_at, due, state, front, back, images)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.DeckID, c.Created, c.Updated, c.Due, int(c.State), c.Front, c.Back, images,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}

	return c
}

// SeedPublicDeck creates a catalog deck with n cards and a NULL download counter.
func SeedPublicDeck(t *testing.T, pool *pgxpool.Pool, n int) (domain.PublicDeck, []domain.PublicCard) {
	t.Helper()
	ctx := context.Background()

	deck := domain.PublicDeck{ID: "pub-" + uniqueSuffix(), Name: "Public " + uniqueSuffix(), Cards: n}
	if _, err := pool.Exec(ctx, `INSERT INTO public_decks (id, name) VALUES ($1, $2)`, deck.ID, deck.Name); err != nil {
		t.Fatalf("testhelper: SeedPublicDeck: %v", err)
	}

	cards := make([]domain.PublicCard, 0, n)
	for i := 0; i < n; i++ {
		c := domain.PublicCard{
			ID:     "pubcard-" + uniqueSuffix(),
			DeckID: deck.ID,
			Front:  "front",
			Back:   "back",
			Images: map[string]string{},
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO public_cards (id, deck_id, front, back, images) VALUES ($1, $2, $3, $4, '{}'::jsonb)`,
			c.ID, c.DeckID, c.Front, c.Back,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedPublicDeck card: %v", err)
		}
		cards = append(cards, c)
	}

	return deck, cards
}
