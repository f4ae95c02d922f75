// Package device implements the client side of the flashcards app: study
// against the local SQLite store or the cloud API, conversion of local decks
// to cloud decks, and import from the public catalog.
package device

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/heartmarshall/flashcards/internal/adapter/cloud"
	"github.com/heartmarshall/flashcards/internal/adapter/local"
	"github.com/heartmarshall/flashcards/internal/domain"
)

// ErrNotLoggedIn is returned by cloud operations without a live session.
var ErrNotLoggedIn = errors.New("not logged in")

// Store is the CRUD surface shared by the local and cloud backends.
type Store interface {
	GetAllDecks(ctx context.Context) ([]domain.Deck, error)
	GetDeck(ctx context.Context, id string) (*domain.Deck, error)
	CreateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error)
	UpdateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, id string) error

	GetAllCards(ctx context.Context) ([]domain.Card, error)
	GetAllCardsFromDeck(ctx context.Context, deckID string) ([]domain.Card, error)
	GetCard(ctx context.Context, id string) (*domain.Card, error)
	CreateCard(ctx context.Context, c domain.Card) (*domain.Card, error)
	UpdateCard(ctx context.Context, c domain.Card) (*domain.Card, error)
	DeleteCard(ctx context.Context, id string) error

	GetCardCounts(ctx context.Context) (domain.CardCounts, error)
}

var (
	_ Store = (*local.Store)(nil)
	_ Store = (*CloudStore)(nil)
)

// CloudStore adapts cloud.Client to Store. Server statuses are translated
// to domain errors so callers handle both backends alike.
type CloudStore struct {
	client *cloud.Client
}

// NewCloudStore wraps client.
func NewCloudStore(client *cloud.Client) *CloudStore {
	return &CloudStore{client: client}
}

func (s *CloudStore) GetAllDecks(ctx context.Context) ([]domain.Deck, error) {
	resp, err := s.client.GetAllDecks(ctx)
	if !resp.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, translate(err)
	}
	return resp.Data, nil
}

// GetDeck has no endpoint of its own; it filters the deck list.
func (s *CloudStore) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	decks, err := s.GetAllDecks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range decks {
		if decks[i].ID == id {
			return &decks[i], nil
		}
	}
	return nil, fmt.Errorf("deck %s: %w", id, domain.ErrDeckNotFound)
}

func (s *CloudStore) CreateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error) {
	out, err := s.client.CreateDeck(ctx, d)
	return out, translate(err)
}

func (s *CloudStore) UpdateDeck(ctx context.Context, d domain.Deck) (*domain.Deck, error) {
	out, err := s.client.UpdateDeck(ctx, d)
	return out, translate(err)
}

func (s *CloudStore) DeleteDeck(ctx context.Context, id string) error {
	return translate(s.client.DeleteDeck(ctx, id))
}

func (s *CloudStore) GetAllCards(ctx context.Context) ([]domain.Card, error) {
	out, err := s.client.GetAllCards(ctx)
	return out, translate(err)
}

func (s *CloudStore) GetAllCardsFromDeck(ctx context.Context, deckID string) ([]domain.Card, error) {
	out, err := s.client.GetAllCardsFromDeck(ctx, deckID)
	return out, translate(err)
}

func (s *CloudStore) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	out, err := s.client.GetCard(ctx, id)
	return out, translate(err)
}

func (s *CloudStore) CreateCard(ctx context.Context, c domain.Card) (*domain.Card, error) {
	out, err := s.client.CreateCard(ctx, c)
	return out, translate(err)
}

func (s *CloudStore) UpdateCard(ctx context.Context, c domain.Card) (*domain.Card, error) {
	out, err := s.client.UpdateCard(ctx, c)
	return out, translate(err)
}

func (s *CloudStore) DeleteCard(ctx context.Context, id string) error {
	return translate(s.client.DeleteCard(ctx, id))
}

func (s *CloudStore) GetCardCounts(ctx context.Context) (domain.CardCounts, error) {
	out, err := s.client.GetCardCounts(ctx)
	return out, translate(err)
}

// translate keeps the StatusError in the chain and adds the matching domain
// sentinel.
func translate(err error) error {
	var serr *cloud.StatusError
	if !errors.As(err, &serr) {
		return err
	}
	switch serr.Status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrForbidden, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return err
}
