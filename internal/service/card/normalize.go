package card

import (
	"time"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// normalize fills the fields a client may omit on a new card.
func normalize(c *domain.Card, now time.Time) {
	if c.Created.IsZero() {
		c.Created = now
	}
	if c.Updated.IsZero() {
		c.Updated = now
	}
	if c.Due.IsZero() {
		c.Due = c.Created
	}
	if c.Images == nil {
		c.Images = map[string]string{}
	}
}
