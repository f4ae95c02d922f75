package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/wire"
)

type cardService interface {
	ListAll(ctx context.Context) ([]domain.Card, error)
	ListByDeck(ctx context.Context, deckID string) ([]domain.Card, error)
	Get(ctx context.Context, cardID string) (*domain.Card, error)
	Create(ctx context.Context, c domain.Card) (*domain.Card, error)
	Update(ctx context.Context, c domain.Card) (*domain.Card, error)
	Delete(ctx context.Context, cardID string) error
}

// CardHandler serves cards of the caller's decks.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "cards")}
}

// List handles GET /cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "failed to load cards")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromCards(cards))
}

// ListByDeck handles GET /decks/{deckId}/cards.
func (h *CardHandler) ListByDeck(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListByDeck(r.Context(), r.PathValue("deckId"))
	if err != nil {
		handleError(w, r, h.log, err, "failed to load cards")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromCards(cards))
}

// Get handles GET /cards/{cardId}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), r.PathValue("cardId"))
	if err != nil {
		handleError(w, r, h.log, err, "failed to load card")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromCard(*c))
}

// Create handles POST /cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wire.Card
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), req.ToCard())
	if err != nil {
		handleError(w, r, h.log, err, "failed to create card")
		return
	}
	writeJSON(w, http.StatusCreated, wire.FromCard(*c))
}

// Update handles PUT /cards.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req wire.Card
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Update(r.Context(), req.ToCard())
	if err != nil {
		handleError(w, r, h.log, err, "failed to update card")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromCard(*c))
}

// Delete handles DELETE /cards/{cardId}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("cardId")); err != nil {
		handleError(w, r, h.log, err, "failed to delete card")
		return
	}
	writeMessage(w, http.StatusOK, "card deleted")
}
