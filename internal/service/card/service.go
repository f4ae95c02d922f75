package card

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	ListByDeck(ctx context.Context, deckID string) ([]domain.Card, error)
	ListByDecks(ctx context.Context, deckIDs []string) ([]domain.Card, error)
	Create(ctx context.Context, c *domain.Card) (*domain.Card, error)
	Replace(ctx context.Context, c *domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, id string) error
}

type deckRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	GetByID(ctx context.Context, id string) (*domain.Deck, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages cards of cloud decks. Ownership is checked through the
// card's deck.
type Service struct {
	log   *slog.Logger
	cards cardRepo
	decks deckRepo
	now   func() time.Time
}

// NewService creates a new card service.
func NewService(logger *slog.Logger, cards cardRepo, decks deckRepo) *Service {
	return &Service{
		log:   logger.With("service", "card"),
		cards: cards,
		decks: decks,
		now:   time.Now,
	}
}

func userID(ctx context.Context) (uuid.UUID, error) {
	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return uid, nil
}

// checkDeck returns domain.ErrNotFound for a missing deck and
// domain.ErrForbidden for a deck userID does not own.
func (s *Service) checkDeck(ctx context.Context, userID uuid.UUID, deckID string) error {
	d, err := s.decks.GetByID(ctx, deckID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrDeckNotFound
	}
	if err != nil {
		return err
	}
	if !d.OwnedBy(userID) {
		return domain.ErrForbidden
	}
	return nil
}

// getCard loads a card, reporting a missing one as domain.ErrCardNotFound.
func (s *Service) getCard(ctx context.Context, cardID string) (*domain.Card, error) {
	c, err := s.cards.GetByID(ctx, cardID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrCardNotFound
	}
	return c, err
}

// checkDeckStrict is checkDeck with a missing deck reported as forbidden.
// Reads of a single card do not reveal whether its deck still exists.
func (s *Service) checkDeckStrict(ctx context.Context, userID uuid.UUID, deckID string) error {
	err := s.checkDeck(ctx, userID, deckID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrForbidden
	}
	return err
}
