package domain

import (
	"time"
)

// DueCount holds the number of due cards of one deck split by review history.
type DueCount struct {
	New int
	Old int
}

// CardCounts maps deck id to its due cards. Decks without due cards are absent.
type CardCounts map[string]DueCount

// DayStart returns local midnight of t in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDueOn reports whether the card is due on the calendar day of now.
// Both instants are compared at day granularity in now's location, so a card
// due at any time today counts.
func (c *Card) IsDueOn(now time.Time) bool {
	due := DayStart(c.Due.In(now.Location()))
	return !due.After(DayStart(now))
}

// CountDue aggregates due cards per deck. Cards with reps > 0 count as old,
// the rest as new.
func CountDue(cards []Card, now time.Time) CardCounts {
	counts := make(CardCounts)
	for i := range cards {
		c := &cards[i]
		if !c.IsDueOn(now) {
			continue
		}
		dc := counts[c.DeckID]
		if c.Reps > 0 {
			dc.Old++
		} else {
			dc.New++
		}
		counts[c.DeckID] = dc
	}
	return counts
}
