package deck

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

type deckRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	GetByID(ctx context.Context, id string) (*domain.Deck, error)
	Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	Replace(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	Delete(ctx context.Context, id string) error
}

type cardRepo interface {
	DeleteByDeck(ctx context.Context, deckID string) (int64, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages cloud decks of the authenticated user.
type Service struct {
	log   *slog.Logger
	decks deckRepo
	cards cardRepo
	now   func() time.Time
}

// NewService creates a new deck service.
func NewService(logger *slog.Logger, decks deckRepo, cards cardRepo) *Service {
	return &Service{
		log:   logger.With("service", "deck"),
		decks: decks,
		cards: cards,
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

// owned loads a deck and checks that userID owns it.
func (s *Service) owned(ctx context.Context, userID uuid.UUID, deckID string) (*domain.Deck, error) {
	d, err := s.decks.GetByID(ctx, deckID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrDeckNotFound
	}
	if err != nil {
		return nil, err
	}
	if !d.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return d, nil
}
