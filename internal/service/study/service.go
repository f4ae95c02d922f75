package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
}

type cardRepo interface {
	ListByDecks(ctx context.Context, deckIDs []string) ([]domain.Card, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service answers due-card questions for the authenticated user. "Today" is
// the calendar day in the configured timezone.
type Service struct {
	log   *slog.Logger
	decks deckRepo
	cards cardRepo
	loc   *time.Location
	now   func() time.Time
}

// NewService creates a new study service. An unknown timezone falls back to UTC.
func NewService(logger *slog.Logger, decks deckRepo, cards cardRepo, timezone string) *Service {
	return &Service{
		log:   logger.With("service", "study"),
		decks: decks,
		cards: cards,
		loc:   ParseTimezone(timezone),
		now:   time.Now,
	}
}
