package device

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/open-spaced-repetition/go-fsrs/v3"

	"github.com/heartmarshall/flashcards/internal/domain"
)

func rating(g domain.ReviewGrade) fsrs.Rating {
	switch g {
	case domain.ReviewGradeAgain:
		return fsrs.Again
	case domain.ReviewGradeHard:
		return fsrs.Hard
	case domain.ReviewGradeEasy:
		return fsrs.Easy
	default:
		return fsrs.Good
	}
}

// cardStore is what a review needs from a backend.
type cardStore interface {
	GetCard(ctx context.Context, id string) (*domain.Card, error)
	UpdateCard(ctx context.Context, c domain.Card) (*domain.Card, error)
	GetAllCardsFromDeck(ctx context.Context, deckID string) ([]domain.Card, error)
}

// Reviewer schedules cards with FSRS and writes each graded card back whole.
type Reviewer struct {
	store     cardStore
	scheduler *fsrs.FSRS
	now       func() time.Time
}

// NewReviewer creates a Reviewer using the default FSRS parameters.
func NewReviewer(store cardStore) *Reviewer {
	return &Reviewer{
		store:     store,
		scheduler: fsrs.NewFSRS(fsrs.DefaultParam()),
		now:       time.Now,
	}
}

// Due returns the deck's cards due today, oldest due first.
func (r *Reviewer) Due(ctx context.Context, deckID string) ([]domain.Card, error) {
	cards, err := r.store.GetAllCardsFromDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("review.Due: %w", err)
	}

	now := r.now()
	due := cards[:0]
	for _, c := range cards {
		if c.IsDueOn(now) {
			due = append(due, c)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].Due.Before(due[j].Due) })
	return due, nil
}

// Review grades one card and stores the rescheduled record.
func (r *Reviewer) Review(ctx context.Context, cardID string, grade domain.ReviewGrade) (*domain.Card, error) {
	if !grade.IsValid() {
		return nil, domain.NewValidationError("grade", "out of range")
	}

	card, err := r.store.GetCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("review.Review: %w", err)
	}

	now := r.now().UTC()
	next := schedule(r.scheduler, *card, grade, now)

	updated, err := r.store.UpdateCard(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("review.Review: %w", err)
	}
	return updated, nil
}

// schedule applies one FSRS step to c. Identity and content are kept.
func schedule(f *fsrs.FSRS, c domain.Card, grade domain.ReviewGrade, now time.Time) domain.Card {
	info := f.Repeat(toFSRS(c), now)[rating(grade)]
	n := info.Card

	c.Due = n.Due
	c.Stability = n.Stability
	c.Difficulty = n.Difficulty
	c.ElapsedDays = int(n.ElapsedDays)
	c.ScheduledDays = int(n.ScheduledDays)
	c.Reps = int(n.Reps)
	c.Lapses = int(n.Lapses)
	c.State = domain.CardState(n.State)
	last := n.LastReview
	c.LastReview = &last
	c.Updated = now
	return c
}

func toFSRS(c domain.Card) fsrs.Card {
	fc := fsrs.Card{
		Due:           c.Due,
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		ElapsedDays:   uint64(c.ElapsedDays),
		ScheduledDays: uint64(c.ScheduledDays),
		Reps:          uint64(c.Reps),
		Lapses:        uint64(c.Lapses),
		State:         fsrs.State(c.State),
	}
	if c.LastReview != nil {
		fc.LastReview = *c.LastReview
	}
	return fc
}
