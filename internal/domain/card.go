package domain

import (
	"time"
)

// Card is a spaced-repetition scheduling unit owned by a deck through DeckID.
// It is always replaced as a whole; there is no partial update.
type Card struct {
	ID            string
	DeckID        string
	Created       time.Time
	Updated       time.Time
	Due           time.Time
	Stability     float64
	Difficulty    float64
	ElapsedDays   int
	ScheduledDays int
	Reps          int
	Lapses        int
	State         CardState
	LastReview    *time.Time
	Front         string
	Back          string
	Images        map[string]string
}

// NewCard returns a never-reviewed card due at its creation time.
func NewCard(id, deckID, front, back string, images map[string]string, now time.Time) Card {
	if images == nil {
		images = map[string]string{}
	}
	return Card{
		ID:      id,
		DeckID:  deckID,
		Created: now,
		Updated: now,
		Due:     now,
		State:   CardStateNew,
		Front:   front,
		Back:    back,
		Images:  images,
	}
}

// IsNew reports whether the card has never been reviewed.
func (c *Card) IsNew() bool {
	return c.Reps == 0
}

// Validate checks identity fields and the scheduling invariants.
func (c *Card) Validate() error {
	var errs []FieldError

	if c.ID == "" {
		errs = append(errs, FieldError{Field: "_id", Message: "required"})
	}
	if c.DeckID == "" {
		errs = append(errs, FieldError{Field: "deck_id", Message: "required"})
	}
	if c.Due.IsZero() {
		errs = append(errs, FieldError{Field: "due", Message: "required"})
	}
	if c.Stability < 0 {
		errs = append(errs, FieldError{Field: "stability", Message: "must be >= 0"})
	}
	if c.Difficulty < 0 {
		errs = append(errs, FieldError{Field: "difficulty", Message: "must be >= 0"})
	}
	if c.ElapsedDays < 0 || c.ScheduledDays < 0 || c.Reps < 0 || c.Lapses < 0 {
		errs = append(errs, FieldError{Field: "counters", Message: "must be >= 0"})
	}
	if !c.State.IsValid() {
		errs = append(errs, FieldError{Field: "state", Message: "invalid value"})
	}
	if c.Reps == 0 {
		if c.State != CardStateNew {
			errs = append(errs, FieldError{Field: "state", Message: "must be New when reps is 0"})
		}
		if c.LastReview != nil {
			errs = append(errs, FieldError{Field: "last_review", Message: "must be empty when reps is 0"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
