package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flashcards/internal/domain"
)

type catalogRepo interface {
	ListDecks(ctx context.Context) ([]domain.PublicDeck, error)
	ListCards(ctx context.Context, deckID string) ([]domain.PublicCard, error)
	IncrementDownloads(ctx context.Context, deckID string) error
	ReplaceAll(ctx context.Context, decks []domain.PublicDeck, cards []domain.PublicCard) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service serves and reloads the public deck catalog.
type Service struct {
	log     *slog.Logger
	catalog catalogRepo
	tx      txManager
}

// NewService creates a new catalog service.
func NewService(logger *slog.Logger, catalog catalogRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		catalog: catalog,
		tx:      tx,
	}
}
