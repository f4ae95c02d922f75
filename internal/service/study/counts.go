package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/pkg/ctxutil"
)

// CardCounts returns per-deck due counts over the caller's decks. It is
// recomputed on every call since due-ness changes with the date alone.
func (s *Service) CardCounts(ctx context.Context) (domain.CardCounts, error) {
	uid, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	decks, err := s.decks.ListByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("study.CardCounts decks: %w", err)
	}
	if len(decks) == 0 {
		return domain.CardCounts{}, nil
	}

	ids := make([]string, len(decks))
	for i := range decks {
		ids[i] = decks[i].ID
	}

	cards, err := s.cards.ListByDecks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("study.CardCounts cards: %w", err)
	}

	return domain.CountDue(cards, s.now().In(s.loc)), nil
}
