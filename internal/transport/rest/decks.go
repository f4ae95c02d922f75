package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/wire"
)

type deckService interface {
	List(ctx context.Context) ([]domain.Deck, error)
	Create(ctx context.Context, d domain.Deck) (*domain.Deck, error)
	Update(ctx context.Context, d domain.Deck) (*domain.Deck, error)
	Delete(ctx context.Context, deckID string) error
}

// DeckHandler serves the caller's cloud decks.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "decks")}
}

// List handles GET /decks.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "failed to load decks")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromDecks(decks))
}

// Create handles POST /decks.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wire.Deck
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.Create(r.Context(), req.ToDeck())
	if err != nil {
		handleError(w, r, h.log, err, "failed to create deck")
		return
	}
	writeJSON(w, http.StatusCreated, wire.FromDeck(*d))
}

// Update handles PUT /decks.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req wire.Deck
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.Update(r.Context(), req.ToDeck())
	if err != nil {
		handleError(w, r, h.log, err, "failed to update deck")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromDeck(*d))
}

// Delete handles DELETE /decks/{deckId}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("deckId")); err != nil {
		handleError(w, r, h.log, err, "failed to delete deck")
		return
	}
	writeMessage(w, http.StatusOK, "deck deleted")
}
