package convert

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// ErrMigrationFailed is the single error reported for any failed conversion
// step. The underlying cause is wrapped alongside it for logging.
var ErrMigrationFailed = errors.New("migration failed")

type deckRepo interface {
	Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	Delete(ctx context.Context, id string) error
}

type cardRepo interface {
	DeleteByDeck(ctx context.Context, deckID string) (int64, error)
	UpsertMany(ctx context.Context, cards []domain.Card) error
}

// Service moves a device-local deck into the cloud store.
type Service struct {
	log   *slog.Logger
	decks deckRepo
	cards cardRepo
}

// NewService creates a new conversion service.
func NewService(logger *slog.Logger, decks deckRepo, cards cardRepo) *Service {
	return &Service{
		log:   logger.With("service", "convert"),
		decks: decks,
		cards: cards,
	}
}
