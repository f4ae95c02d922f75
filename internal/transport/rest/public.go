package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/wire"
)

type catalogService interface {
	ListDecks(ctx context.Context) ([]domain.PublicDeck, error)
	DeckCards(ctx context.Context, deckID string) ([]domain.PublicCard, error)
}

// PublicHandler serves the public catalog without authentication.
type PublicHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(svc catalogService, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, log: logger.With("handler", "public")}
}

// ListDecks handles GET /public-decks.
func (h *PublicHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "failed to load public decks")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromPublicDecks(decks))
}

// DeckCards handles GET /public-decks/{deckId}/cards. Each call counts as a
// download.
func (h *PublicHandler) DeckCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.DeckCards(r.Context(), r.PathValue("deckId"))
	if err != nil {
		handleError(w, r, h.log, err, "failed to load public deck")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromPublicCards(cards))
}
