package local

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/temporal"
)

type deckRow struct {
	ID      string          `db:"id"`
	Name    string          `db:"name"`
	Type    string          `db:"type"`
	Created temporal.Millis `db:"created"`
	Updated temporal.Millis `db:"updated"`
}

func fromDeck(d domain.Deck) deckRow {
	return deckRow{
		ID:      d.ID,
		Name:    d.Name,
		Type:    string(domain.DeckTypeLocal),
		Created: temporal.NewMillis(d.Created),
		Updated: temporal.NewMillis(d.Updated),
	}
}

func (r deckRow) toDomain() domain.Deck {
	return domain.Deck{
		ID:      r.ID,
		Name:    r.Name,
		Type:    domain.DeckType(r.Type),
		Created: r.Created.Time,
		Updated: r.Updated.Time,
	}
}

type cardRow struct {
	ID            string          `db:"id"`
	DeckID        string          `db:"deck_id"`
	Created       temporal.Millis `db:"created"`
	Updated       temporal.Millis `db:"updated"`
	Due           temporal.Millis `db:"due"`
	Stability     float64         `db:"stability"`
	Difficulty    float64         `db:"difficulty"`
	ElapsedDays   int             `db:"elapsed_days"`
	ScheduledDays int             `db:"scheduled_days"`
	Reps          int             `db:"reps"`
	Lapses        int             `db:"lapses"`
	State         int             `db:"state"`
	LastReview    temporal.Millis `db:"last_review"`
	Front         string          `db:"front"`
	Back          string          `db:"back"`
	Images        images          `db:"images"`
}

func fromCard(c domain.Card) cardRow {
	return cardRow{
		ID:            c.ID,
		DeckID:        c.DeckID,
		Created:       temporal.NewMillis(c.Created),
		Updated:       temporal.NewMillis(c.Updated),
		Due:           temporal.NewMillis(c.Due),
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		ElapsedDays:   c.ElapsedDays,
		ScheduledDays: c.ScheduledDays,
		Reps:          c.Reps,
		Lapses:        c.Lapses,
		State:         int(c.State),
		LastReview:    temporal.MillisPtr(c.LastReview),
		Front:         c.Front,
		Back:          c.Back,
		Images:        images(c.Images),
	}
}

func (r cardRow) toDomain() domain.Card {
	imgs := map[string]string(r.Images)
	if imgs == nil {
		imgs = map[string]string{}
	}
	return domain.Card{
		ID:            r.ID,
		DeckID:        r.DeckID,
		Created:       r.Created.Time,
		Updated:       r.Updated.Time,
		Due:           r.Due.Time,
		Stability:     r.Stability,
		Difficulty:    r.Difficulty,
		ElapsedDays:   r.ElapsedDays,
		ScheduledDays: r.ScheduledDays,
		Reps:          r.Reps,
		Lapses:        r.Lapses,
		State:         domain.CardState(r.State),
		LastReview:    r.LastReview.Ptr(),
		Front:         r.Front,
		Back:          r.Back,
		Images:        imgs,
	}
}

// images is the card image map stored as a JSON text column.
type images map[string]string

func (m images) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *images) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = images{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("images: unsupported type %T", src)
	}
	out := map[string]string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("images: %w", err)
	}
	*m = out
	return nil
}
