package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/service/convert"
	"github.com/heartmarshall/flashcards/internal/wire"
)

type countsService interface {
	CardCounts(ctx context.Context) (domain.CardCounts, error)
}

type convertService interface {
	Convert(ctx context.Context, deck domain.Deck, cards []domain.Card) (*domain.Deck, error)
}

// StudyHandler serves due counts and local-to-cloud conversion.
type StudyHandler struct {
	counts  countsService
	convert convertService
	log     *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(counts countsService, conv convertService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{counts: counts, convert: conv, log: logger.With("handler", "study")}
}

// CardCounts handles GET /card-counts.
func (h *StudyHandler) CardCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.counts.CardCounts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, "failed to count cards")
		return
	}
	writeJSON(w, http.StatusOK, wire.FromCardCounts(counts))
}

// Convert handles POST /convert.
func (h *StudyHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req wire.ConvertRequest
	if !decodeJSONLimit(w, r, &req, maxConvertBodyBytes) {
		return
	}

	_, err := h.convert.Convert(r.Context(), req.Deck.ToDeck(), wire.ToCards(req.Cards))
	if err != nil {
		if errors.Is(err, convert.ErrMigrationFailed) {
			h.log.ErrorContext(r.Context(), "conversion failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "conversion failed")
			return
		}
		handleError(w, r, h.log, err, "conversion failed")
		return
	}
	writeMessage(w, http.StatusCreated, "deck converted")
}
