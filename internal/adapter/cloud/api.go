package cloud

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/wire"
)

// ---------------------------------------------------------------------------
// Decks
// ---------------------------------------------------------------------------

// GetAllDecks lists the caller's decks. The status is reported even when the
// request failed so callers can tell a lapsed session from other errors.
func (c *Client) GetAllDecks(ctx context.Context) (Response[[]domain.Deck], error) {
	var out []wire.Deck
	status, err := c.do(ctx, http.MethodGet, "/decks", nil, &out)
	if err != nil {
		return Response[[]domain.Deck]{Status: status}, err
	}
	return Response[[]domain.Deck]{Status: status, Data: wire.ToDecks(out)}, nil
}

func (c *Client) CreateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error) {
	var out wire.Deck
	if _, err := c.do(ctx, http.MethodPost, "/decks", wire.FromDeck(d), &out); err != nil {
		return nil, err
	}
	created := out.ToDeck()
	return &created, nil
}

func (c *Client) UpdateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error) {
	var out wire.Deck
	if _, err := c.do(ctx, http.MethodPut, "/decks", wire.FromDeck(d), &out); err != nil {
		return nil, err
	}
	updated := out.ToDeck()
	return &updated, nil
}

func (c *Client) DeleteDeck(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/decks/"+url.PathEscape(id), nil, nil)
	return err
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

func (c *Client) GetAllCards(ctx context.Context) ([]domain.Card, error) {
	return c.cards(ctx, "/cards")
}

func (c *Client) GetAllCardsFromDeck(ctx context.Context, deckID string) ([]domain.Card, error) {
	return c.cards(ctx, "/decks/"+url.PathEscape(deckID)+"/cards")
}

func (c *Client) cards(ctx context.Context, path string) ([]domain.Card, error) {
	var out []wire.Card
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return wire.ToCards(out), nil
}

func (c *Client) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	var out wire.Card
	if _, err := c.do(ctx, http.MethodGet, "/cards/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	card := out.ToCard()
	return &card, nil
}

func (c *Client) CreateCard(ctx context.Context, card domain.Card) (*domain.Card, error) {
	var out wire.Card
	if _, err := c.do(ctx, http.MethodPost, "/cards", wire.FromCard(card), &out); err != nil {
		return nil, err
	}
	created := out.ToCard()
	return &created, nil
}

func (c *Client) UpdateCard(ctx context.Context, card domain.Card) (*domain.Card, error) {
	var out wire.Card
	if _, err := c.do(ctx, http.MethodPut, "/cards", wire.FromCard(card), &out); err != nil {
		return nil, err
	}
	updated := out.ToCard()
	return &updated, nil
}

func (c *Client) DeleteCard(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/cards/"+url.PathEscape(id), nil, nil)
	return err
}

// ---------------------------------------------------------------------------
// Study
// ---------------------------------------------------------------------------

func (c *Client) GetCardCounts(ctx context.Context) (domain.CardCounts, error) {
	var out map[string]wire.DueCount
	if _, err := c.do(ctx, http.MethodGet, "/card-counts", nil, &out); err != nil {
		return nil, err
	}
	return wire.ToCardCounts(out), nil
}

// Convert uploads a local deck with its cards.
func (c *Client) Convert(ctx context.Context, deck domain.Deck, cards []domain.Card) error {
	req := wire.ConvertRequest{Deck: wire.FromDeck(deck), Cards: wire.FromCards(cards)}
	_, err := c.do(ctx, http.MethodPost, "/convert", req, nil)
	return err
}

// ---------------------------------------------------------------------------
// Public catalog
// ---------------------------------------------------------------------------

func (c *Client) PublicDecks(ctx context.Context) ([]domain.PublicDeck, error) {
	var out []wire.PublicDeck
	if _, err := c.do(ctx, http.MethodGet, "/public-decks", nil, &out); err != nil {
		return nil, err
	}
	return wire.ToPublicDecks(out), nil
}

// PublicDeckCards downloads a catalog deck. The server counts every call.
func (c *Client) PublicDeckCards(ctx context.Context, deckID string) ([]domain.PublicCard, error) {
	var out []wire.PublicCard
	if _, err := c.do(ctx, http.MethodGet, "/public-decks/"+url.PathEscape(deckID)+"/cards", nil, &out); err != nil {
		return nil, err
	}
	return wire.ToPublicCards(out), nil
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

// Signup creates an account and stores the issued session in the jar.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/signup", wire.Credentials{Username: username, Password: password}, nil)
	return err
}

// Login stores the issued session in the jar.
func (c *Client) Login(ctx context.Context, username, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/login", wire.Credentials{Username: username, Password: password}, nil)
	return err
}

// Logout ends the session on the server; the server clears the cookie.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	return err
}
