package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/pkg/ctxutil"
)

// Convert replaces the cloud copy of deck with the given deck and cards, owned
// by the caller. Steps run strictly in order:
//
//  1. stamp the caller as owner
//  2. delete any cloud deck with the same id (a missing one is fine)
//  3. force the type to cloud
//  4. insert the deck
//  5. when cards is not empty, delete the deck's cloud cards and upsert cards
//
// There is no rollback. A failure after step 4 leaves an empty cloud deck
// that a repeated conversion overwrites.
func (s *Service) Convert(ctx context.Context, deck domain.Deck, cards []domain.Card) (*domain.Deck, error) {
	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validate(&deck, cards); err != nil {
		return nil, err
	}

	deck.UserID = &uid

	if err := s.decks.Delete(ctx, deck.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, s.fail(ctx, deck.ID, "delete deck", err)
	}

	deck.Type = domain.DeckTypeCloud

	created, err := s.decks.Create(ctx, &deck)
	if err != nil {
		return nil, s.fail(ctx, deck.ID, "insert deck", err)
	}

	if len(cards) > 0 {
		if _, err := s.cards.DeleteByDeck(ctx, deck.ID); err != nil {
			return nil, s.fail(ctx, deck.ID, "delete cards", err)
		}
		if err := s.cards.UpsertMany(ctx, cards); err != nil {
			return nil, s.fail(ctx, deck.ID, "upsert cards", err)
		}
	}

	s.log.InfoContext(ctx, "deck converted",
		slog.String("user_id", uid.String()),
		slog.String("deck_id", deck.ID),
		slog.Int("cards", len(cards)),
	)
	return created, nil
}

func (s *Service) fail(ctx context.Context, deckID, step string, err error) error {
	s.log.ErrorContext(ctx, "conversion failed",
		slog.String("deck_id", deckID),
		slog.String("step", step),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("convert.Convert %s: %w: %w", step, ErrMigrationFailed, err)
}

// validate checks the payload before anything is written. Cards must belong
// to the converted deck.
func validate(deck *domain.Deck, cards []domain.Card) error {
	var errs []domain.FieldError

	if deck.ID == "" {
		errs = append(errs, domain.FieldError{Field: "deck._id", Message: "required"})
	}
	if deck.Name == "" {
		errs = append(errs, domain.FieldError{Field: "deck.name", Message: "required"})
	}
	for i := range cards {
		if cards[i].DeckID != deck.ID {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("cards[%d].deck_id", i),
				Message: "must match deck._id",
			})
			continue
		}
		if err := cards[i].Validate(); err != nil {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("cards[%d]", i),
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
