package deck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// List returns every deck owned by the caller.
func (s *Service) List(ctx context.Context) ([]domain.Deck, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	decks, err := s.decks.ListByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("deck.List: %w", err)
	}
	return decks, nil
}

// Create stores a new cloud deck owned by the caller. The type is forced to
// cloud whatever the client sent.
func (s *Service) Create(ctx context.Context, d domain.Deck) (*domain.Deck, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	d.UserID = &uid
	d.Type = domain.DeckTypeCloud
	stampTimes(&d, s.now())

	if err := d.Validate(); err != nil {
		return nil, err
	}

	created, err := s.decks.Create(ctx, &d)
	if err != nil {
		return nil, fmt.Errorf("deck.Create: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", uid.String()),
		slog.String("deck_id", created.ID),
	)
	return created, nil
}

// Update replaces a deck the caller owns.
func (s *Service) Update(ctx context.Context, d domain.Deck) (*domain.Deck, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if d.ID == "" {
		return nil, domain.NewValidationError("_id", "required")
	}

	existing, err := s.owned(ctx, uid, d.ID)
	if err != nil {
		return nil, fmt.Errorf("deck.Update: %w", err)
	}

	d.UserID = &uid
	d.Type = domain.DeckTypeCloud
	if d.Created.IsZero() {
		d.Created = existing.Created
	}
	if d.Updated.IsZero() {
		d.Updated = s.now()
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.decks.Replace(ctx, &d)
	if err != nil {
		return nil, fmt.Errorf("deck.Update: %w", err)
	}
	return updated, nil
}

// Delete removes the caller's deck. Cards go first, then the deck row, so an
// interrupted delete can leave orphaned cards but never a deck missing some
// of its cards.
func (s *Service) Delete(ctx context.Context, deckID string) error {
	uid, err := userID(ctx)
	if err != nil {
		return err
	}

	if _, err := s.owned(ctx, uid, deckID); err != nil {
		return fmt.Errorf("deck.Delete: %w", err)
	}

	removed, err := s.cards.DeleteByDeck(ctx, deckID)
	if err != nil {
		return fmt.Errorf("deck.Delete cards: %w", err)
	}
	if err := s.decks.Delete(ctx, deckID); err != nil {
		return fmt.Errorf("deck.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("deck_id", deckID),
		slog.Int64("cards", removed),
	)
	return nil
}

// stampTimes fills creation and update instants the client left out.
func stampTimes(d *domain.Deck, now time.Time) {
	if d.Created.IsZero() {
		d.Created = now
	}
	if d.Updated.IsZero() {
		d.Updated = now
	}
}
