package device

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/domain"
)

type publicCatalog interface {
	PublicDecks(ctx context.Context) ([]domain.PublicDeck, error)
	PublicDeckCards(ctx context.Context, deckID string) ([]domain.PublicCard, error)
}

type deckWriter interface {
	CreateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error)
	CreateCard(ctx context.Context, c domain.Card) (*domain.Card, error)
}

// Importer copies a public deck into one of the user's stores as a new deck
// of fresh cards.
type Importer struct {
	catalog  publicCatalog
	dst      deckWriter
	deckType domain.DeckType
	newID    func() string
	now      func() time.Time
}

// NewImporter creates an Importer writing decks of deckType into dst.
func NewImporter(catalog publicCatalog, dst deckWriter, deckType domain.DeckType) *Importer {
	return &Importer{
		catalog:  catalog,
		dst:      dst,
		deckType: deckType,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Import downloads publicDeckID and creates it under new ids. Every card is
// new and due now.
func (im *Importer) Import(ctx context.Context, publicDeckID string) (*domain.Deck, int, error) {
	decks, err := im.catalog.PublicDecks(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("import: list catalog: %w", err)
	}
	var name string
	for _, d := range decks {
		if d.ID == publicDeckID {
			name = d.Name
			break
		}
	}
	if name == "" {
		return nil, 0, fmt.Errorf("import %s: %w", publicDeckID, domain.ErrDeckNotFound)
	}

	cards, err := im.catalog.PublicDeckCards(ctx, publicDeckID)
	if err != nil {
		return nil, 0, fmt.Errorf("import: download: %w", err)
	}

	now := im.now().UTC()
	deck, err := im.dst.CreateDeck(ctx, domain.NewDeck(im.newID(), name, im.deckType, now))
	if err != nil {
		return nil, 0, fmt.Errorf("import: create deck: %w", err)
	}

	for i, pc := range cards {
		c := domain.NewCard(im.newID(), deck.ID, pc.Front, pc.Back, copyImages(pc.Images), now)
		if _, err := im.dst.CreateCard(ctx, c); err != nil {
			return deck, i, fmt.Errorf("import: create card %d: %w", i, err)
		}
	}
	return deck, len(cards), nil
}

func copyImages(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
