package domain

import (
	"fmt"
	"strings"
)

// CardState is the scheduling state produced by the scoring algorithm.
// Values match the numeric encoding used on the wire and on disk.
type CardState int

const (
	CardStateNew CardState = iota
	CardStateLearning
	CardStateReview
	CardStateRelearning
)

func (s CardState) String() string {
	switch s {
	case CardStateNew:
		return "New"
	case CardStateLearning:
		return "Learning"
	case CardStateReview:
		return "Review"
	case CardStateRelearning:
		return "Relearning"
	}
	return fmt.Sprintf("CardState(%d)", int(s))
}

func (s CardState) IsValid() bool {
	return s >= CardStateNew && s <= CardStateRelearning
}

// DeckType tags the backend a deck lives in.
type DeckType string

const (
	DeckTypeLocal DeckType = "local"
	DeckTypeCloud DeckType = "cloud"
)

func (t DeckType) String() string { return string(t) }

func (t DeckType) IsValid() bool {
	switch t {
	case DeckTypeLocal, DeckTypeCloud:
		return true
	}
	return false
}

// ReviewGrade is the user's self-assessed recall quality.
type ReviewGrade int

const (
	ReviewGradeAgain ReviewGrade = iota + 1
	ReviewGradeHard
	ReviewGradeGood
	ReviewGradeEasy
)

func (g ReviewGrade) String() string {
	switch g {
	case ReviewGradeAgain:
		return "again"
	case ReviewGradeHard:
		return "hard"
	case ReviewGradeGood:
		return "good"
	case ReviewGradeEasy:
		return "easy"
	}
	return fmt.Sprintf("ReviewGrade(%d)", int(g))
}

func (g ReviewGrade) IsValid() bool {
	return g >= ReviewGradeAgain && g <= ReviewGradeEasy
}

// ParseReviewGrade accepts a grade name (again, hard, good, easy) or its
// number (1-4).
func ParseReviewGrade(s string) (ReviewGrade, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "again", "1":
		return ReviewGradeAgain, nil
	case "hard", "2":
		return ReviewGradeHard, nil
	case "good", "3":
		return ReviewGradeGood, nil
	case "easy", "4":
		return ReviewGradeEasy, nil
	}
	return 0, NewValidationError("grade", fmt.Sprintf("unknown grade %q", s))
}
