package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxDeckNameLength bounds deck names accepted from clients.
const MaxDeckNameLength = 200

// Deck is a named collection of cards. UserID is set only for cloud decks.
type Deck struct {
	ID      string
	Created time.Time
	Updated time.Time
	Name    string
	Type    DeckType
	UserID  *uuid.UUID
}

// NewDeck returns a deck of the given type stamped with now.
func NewDeck(id, name string, typ DeckType, now time.Time) Deck {
	return Deck{
		ID:      id,
		Created: now,
		Updated: now,
		Name:    name,
		Type:    typ,
	}
}

// OwnedBy reports whether the deck belongs to userID.
func (d *Deck) OwnedBy(userID uuid.UUID) bool {
	return d.UserID != nil && *d.UserID == userID
}

// Validate checks the fields every backend requires.
func (d *Deck) Validate() error {
	var errs []FieldError

	if d.ID == "" {
		errs = append(errs, FieldError{Field: "_id", Message: "required"})
	}
	if d.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	} else if len(d.Name) > MaxDeckNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "too long"})
	}
	if !d.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "must be local or cloud"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
