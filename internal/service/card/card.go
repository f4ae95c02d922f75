package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// ListAll returns the cards of every deck the caller owns.
func (s *Service) ListAll(ctx context.Context) ([]domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	decks, err := s.decks.ListByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("card.ListAll decks: %w", err)
	}

	ids := make([]string, len(decks))
	for i := range decks {
		ids[i] = decks[i].ID
	}

	cards, err := s.cards.ListByDecks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("card.ListAll: %w", err)
	}
	return cards, nil
}

// ListByDeck returns the cards of one owned deck.
func (s *Service) ListByDeck(ctx context.Context, deckID string) ([]domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.checkDeck(ctx, uid, deckID); err != nil {
		return nil, fmt.Errorf("card.ListByDeck: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("card.ListByDeck: %w", err)
	}
	return cards, nil
}

// Get returns one card. A card whose deck is gone or foreign is forbidden.
func (s *Service) Get(ctx context.Context, cardID string) (*domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.getCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("card.Get: %w", err)
	}
	if err := s.checkDeckStrict(ctx, uid, c.DeckID); err != nil {
		return nil, fmt.Errorf("card.Get: %w", err)
	}
	return c, nil
}

// Create stores a card in an owned deck.
func (s *Service) Create(ctx context.Context, c domain.Card) (*domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	normalize(&c, s.now())
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkDeck(ctx, uid, c.DeckID); err != nil {
		return nil, fmt.Errorf("card.Create: %w", err)
	}

	created, err := s.cards.Create(ctx, &c)
	if err != nil {
		return nil, fmt.Errorf("card.Create: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("card_id", created.ID),
		slog.String("deck_id", created.DeckID),
	)
	return created, nil
}

// Update replaces a card as a whole. The card must exist, and both the deck
// it sits in and the deck it is written to must be owned by the caller.
func (s *Service) Update(ctx context.Context, c domain.Card) (*domain.Card, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	normalize(&c, s.now())
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.getCard(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("card.Update: %w", err)
	}
	if err := s.checkDeck(ctx, uid, existing.DeckID); err != nil {
		return nil, fmt.Errorf("card.Update current deck: %w", err)
	}
	if existing.DeckID != c.DeckID {
		if err := s.checkDeck(ctx, uid, c.DeckID); err != nil {
			return nil, fmt.Errorf("card.Update: %w", err)
		}
	}

	updated, err := s.cards.Replace(ctx, &c)
	if err != nil {
		return nil, fmt.Errorf("card.Update: %w", err)
	}
	return updated, nil
}

// Delete removes one card of an owned deck.
func (s *Service) Delete(ctx context.Context, cardID string) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	c, err := s.getCard(ctx, cardID)
	if err != nil {
		return fmt.Errorf("card.Delete: %w", err)
	}
	if err := s.checkDeck(ctx, uid, c.DeckID); err != nil {
		return fmt.Errorf("card.Delete: %w", err)
	}

	if err := s.cards.Delete(ctx, cardID); err != nil {
		return fmt.Errorf("card.Delete: %w", err)
	}
	return nil
}
