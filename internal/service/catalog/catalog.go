package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// Seed replaces the whole public catalog with the bundle in one transaction.
// The bundle is authoritative; download counters restart from zero.
func (s *Service) Seed(ctx context.Context, b *Bundle) error {
	decks, cards := b.Records()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.catalog.ReplaceAll(txCtx, decks, cards)
	})
	if err != nil {
		return fmt.Errorf("catalog.Seed: %w", err)
	}

	s.log.InfoContext(ctx, "public catalog seeded",
		slog.Int("decks", len(decks)),
		slog.Int("cards", len(cards)),
	)
	return nil
}

// ListDecks returns the catalog with live card counts.
func (s *Service) ListDecks(ctx context.Context) ([]domain.PublicDeck, error) {
	decks, err := s.catalog.ListDecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListDecks: %w", err)
	}
	return decks, nil
}

// DeckCards counts one download of the deck and returns its cards. Every call
// counts; there is no per-viewer deduplication.
func (s *Service) DeckCards(ctx context.Context, deckID string) ([]domain.PublicCard, error) {
	if err := s.catalog.IncrementDownloads(ctx, deckID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDeckNotFound
		}
		return nil, fmt.Errorf("catalog.DeckCards: %w", err)
	}

	cards, err := s.catalog.ListCards(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("catalog.DeckCards: %w", err)
	}
	return cards, nil
}
