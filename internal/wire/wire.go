// Package wire holds the JSON shapes exchanged between the cloud API and its
// clients. Every instant is carried as a temporal.Time so it crosses the
// boundary in tagged form.
package wire

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/temporal"
)

// Deck is the wire form of domain.Deck.
type Deck struct {
	ID      string        `json:"_id"`
	Created temporal.Time `json:"created"`
	Updated temporal.Time `json:"updated"`
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	UserID  *string       `json:"user_id,omitempty"`
}

// Card is the wire form of domain.Card.
type Card struct {
	ID            string            `json:"_id"`
	DeckID        string            `json:"deck_id"`
	Created       temporal.Time     `json:"created"`
	Updated       temporal.Time     `json:"updated"`
	Due           temporal.Time     `json:"due"`
	Stability     float64           `json:"stability"`
	Difficulty    float64           `json:"difficulty"`
	ElapsedDays   int               `json:"elapsed_days"`
	ScheduledDays int               `json:"scheduled_days"`
	Reps          int               `json:"reps"`
	Lapses        int               `json:"lapses"`
	State         int               `json:"state"`
	LastReview    *temporal.Time    `json:"last_review,omitempty"`
	Front         string            `json:"front"`
	Back          string            `json:"back"`
	Images        map[string]string `json:"images"`
}

// ConvertRequest is the body of POST /convert.
type ConvertRequest struct {
	Deck  Deck   `json:"deck"`
	Cards []Card `json:"cards"`
}

// DueCount is one deck's entry in the card-counts response.
type DueCount struct {
	New int `json:"new"`
	Old int `json:"old"`
}

// PublicDeck is a catalog deck as listed by GET /public-decks.
type PublicDeck struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Downloads int    `json:"downloads"`
	Cards     int    `json:"cards"`
}

// PublicCard is a catalog card.
type PublicCard struct {
	ID     string            `json:"_id"`
	DeckID string            `json:"deck_id"`
	Front  string            `json:"front"`
	Back   string            `json:"back"`
	Images map[string]string `json:"images"`
}

// Credentials is the body of the signup and login calls.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Message is the body of success responses that carry no record.
type Message struct {
	Message string `json:"message"`
}

// ErrorBody is the body of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

// FromDeck maps a domain deck to its wire form.
func FromDeck(d domain.Deck) Deck {
	w := Deck{
		ID:      d.ID,
		Created: temporal.NewTime(d.Created),
		Updated: temporal.NewTime(d.Updated),
		Name:    d.Name,
		Type:    d.Type.String(),
	}
	if d.UserID != nil {
		s := d.UserID.String()
		w.UserID = &s
	}
	return w
}

// ToDeck maps the wire deck back. A malformed user_id is dropped; the
// server always overwrites ownership from the session.
func (w Deck) ToDeck() domain.Deck {
	d := domain.Deck{
		ID:      w.ID,
		Created: w.Created.Time,
		Updated: w.Updated.Time,
		Name:    w.Name,
		Type:    domain.DeckType(w.Type),
	}
	if w.UserID != nil {
		if id, err := uuid.Parse(*w.UserID); err == nil {
			d.UserID = &id
		}
	}
	return d
}

// FromDecks maps a deck list, returning an empty slice rather than nil.
func FromDecks(decks []domain.Deck) []Deck {
	out := make([]Deck, 0, len(decks))
	for _, d := range decks {
		out = append(out, FromDeck(d))
	}
	return out
}

// ToDecks maps wire decks back to domain decks.
func ToDecks(decks []Deck) []domain.Deck {
	out := make([]domain.Deck, 0, len(decks))
	for _, d := range decks {
		out = append(out, d.ToDeck())
	}
	return out
}

// FromCard maps a domain card to its wire form. Nil images become an
// empty object.
func FromCard(c domain.Card) Card {
	images := c.Images
	if images == nil {
		images = map[string]string{}
	}
	return Card{
		ID:            c.ID,
		DeckID:        c.DeckID,
		Created:       temporal.NewTime(c.Created),
		Updated:       temporal.NewTime(c.Updated),
		Due:           temporal.NewTime(c.Due),
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		ElapsedDays:   c.ElapsedDays,
		ScheduledDays: c.ScheduledDays,
		Reps:          c.Reps,
		Lapses:        c.Lapses,
		State:         int(c.State),
		LastReview:    temporal.Ptr(c.LastReview),
		Front:         c.Front,
		Back:          c.Back,
		Images:        images,
	}
}

// ToCard maps the wire card back to a domain card.
func (w Card) ToCard() domain.Card {
	images := w.Images
	if images == nil {
		images = map[string]string{}
	}
	return domain.Card{
		ID:            w.ID,
		DeckID:        w.DeckID,
		Created:       w.Created.Time,
		Updated:       w.Updated.Time,
		Due:           w.Due.Time,
		Stability:     w.Stability,
		Difficulty:    w.Difficulty,
		ElapsedDays:   w.ElapsedDays,
		ScheduledDays: w.ScheduledDays,
		Reps:          w.Reps,
		Lapses:        w.Lapses,
		State:         domain.CardState(w.State),
		LastReview:    w.LastReview.Std(),
		Front:         w.Front,
		Back:          w.Back,
		Images:        images,
	}
}

// FromCards maps a card list, returning an empty slice rather than nil.
func FromCards(cards []domain.Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, FromCard(c))
	}
	return out
}

// ToCards maps wire cards back to domain cards.
func ToCards(cards []Card) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ToCard())
	}
	return out
}

// FromCardCounts renders the per-deck due counts keyed by deck id.
func FromCardCounts(counts domain.CardCounts) map[string]DueCount {
	out := make(map[string]DueCount, len(counts))
	for deckID, c := range counts {
		out[deckID] = DueCount{New: c.New, Old: c.Old}
	}
	return out
}

// ToCardCounts is the inverse of FromCardCounts.
func ToCardCounts(counts map[string]DueCount) domain.CardCounts {
	out := make(domain.CardCounts, len(counts))
	for deckID, c := range counts {
		out[deckID] = domain.DueCount{New: c.New, Old: c.Old}
	}
	return out
}

// FromPublicDecks maps catalog decks for GET /public-decks.
func FromPublicDecks(decks []domain.PublicDeck) []PublicDeck {
	out := make([]PublicDeck, 0, len(decks))
	for _, d := range decks {
		out = append(out, PublicDeck{ID: d.ID, Name: d.Name, Downloads: d.Downloads, Cards: d.Cards})
	}
	return out
}

// ToPublicDecks maps catalog decks back.
func ToPublicDecks(decks []PublicDeck) []domain.PublicDeck {
	out := make([]domain.PublicDeck, 0, len(decks))
	for _, d := range decks {
		out = append(out, domain.PublicDeck{ID: d.ID, Name: d.Name, Downloads: d.Downloads, Cards: d.Cards})
	}
	return out
}

// FromPublicCards maps catalog cards for GET /public-decks/{id}/cards.
func FromPublicCards(cards []domain.PublicCard) []PublicCard {
	out := make([]PublicCard, 0, len(cards))
	for _, c := range cards {
		images := c.Images
		if images == nil {
			images = map[string]string{}
		}
		out = append(out, PublicCard{ID: c.ID, DeckID: c.DeckID, Front: c.Front, Back: c.Back, Images: images})
	}
	return out
}

// ToPublicCards maps catalog cards back.
func ToPublicCards(cards []PublicCard) []domain.PublicCard {
	out := make([]domain.PublicCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, domain.PublicCard{ID: c.ID, DeckID: c.DeckID, Front: c.Front, Back: c.Back, Images: c.Images})
	}
	return out
}
