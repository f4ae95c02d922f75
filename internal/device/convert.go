package device

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards/internal/domain"
)

type localSource interface {
	GetDeck(ctx context.Context, id string) (*domain.Deck, error)
	GetAllCardsFromDeck(ctx context.Context, deckID string) ([]domain.Card, error)
	DeleteDeck(ctx context.Context, id string) error
}

type cloudTarget interface {
	Convert(ctx context.Context, deck domain.Deck, cards []domain.Card) error
}

// Converter uploads a local deck and its cards as a cloud deck.
type Converter struct {
	local  localSource
	remote cloudTarget
	log    *slog.Logger
}

// NewConverter creates a Converter.
func NewConverter(local localSource, remote cloudTarget, logger *slog.Logger) *Converter {
	return &Converter{local: local, remote: remote, log: logger.With("component", "converter")}
}

// Convert uploads deckID. The local copy is removed afterwards unless
// keepLocal is set; it is never removed when the upload failed. It returns
// the number of cards uploaded.
func (c *Converter) Convert(ctx context.Context, deckID string, keepLocal bool) (int, error) {
	deck, err := c.local.GetDeck(ctx, deckID)
	if err != nil {
		return 0, fmt.Errorf("convert: load deck: %w", err)
	}
	cards, err := c.local.GetAllCardsFromDeck(ctx, deckID)
	if err != nil {
		return 0, fmt.Errorf("convert: load cards: %w", err)
	}

	if err := c.remote.Convert(ctx, *deck, cards); err != nil {
		return 0, fmt.Errorf("convert: upload: %w", err)
	}

	c.log.InfoContext(ctx, "deck converted",
		slog.String("deck_id", deckID),
		slog.Int("cards", len(cards)),
		slog.Bool("keep_local", keepLocal),
	)

	if keepLocal {
		return len(cards), nil
	}
	if err := c.local.DeleteDeck(ctx, deckID); err != nil {
		return len(cards), fmt.Errorf("convert: remove local copy: %w", err)
	}
	return len(cards), nil
}
