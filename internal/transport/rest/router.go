package rest

import (
	"net/http"

	"github.com/heartmarshall/flashcards/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
	Decks  *DeckHandler
	Cards  *CardHandler
	Study  *StudyHandler
	Public *PublicHandler
}

// NewRouter mounts all routes. Routes under requireAuth need a session
// cookie; throttle guards signup and login and may be nil.
func NewRouter(h Handlers, requireAuth, throttle middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	limited := middleware.Chain(throttle)
	mux.Handle("POST /auth/signup", limited(http.HandlerFunc(h.Auth.Signup)))
	mux.Handle("POST /auth/login", limited(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /public-decks", h.Public.ListDecks)
	mux.HandleFunc("GET /public-decks/{deckId}/cards", h.Public.DeckCards)

	private := func(f http.HandlerFunc) http.Handler { return requireAuth(f) }
	mux.Handle("GET /decks", private(h.Decks.List))
	mux.Handle("POST /decks", private(h.Decks.Create))
	mux.Handle("PUT /decks", private(h.Decks.Update))
	mux.Handle("DELETE /decks/{deckId}", private(h.Decks.Delete))
	mux.Handle("GET /decks/{deckId}/cards", private(h.Cards.ListByDeck))

	mux.Handle("GET /cards", private(h.Cards.List))
	mux.Handle("GET /cards/{cardId}", private(h.Cards.Get))
	mux.Handle("POST /cards", private(h.Cards.Create))
	mux.Handle("PUT /cards", private(h.Cards.Update))
	mux.Handle("DELETE /cards/{cardId}", private(h.Cards.Delete))

	mux.Handle("GET /card-counts", private(h.Study.CardCounts))
	mux.Handle("POST /convert", private(h.Study.Convert))

	return mux
}
