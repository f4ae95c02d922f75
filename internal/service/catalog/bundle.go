package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/flashcards/internal/domain"
)

//go:embed catalog.yaml
var defaultBundle []byte

// Bundle is the static catalog loaded into the public tables on start.
type Bundle struct {
	Decks []BundleDeck `yaml:"decks"`
}

// BundleDeck is one template deck with its cards.
type BundleDeck struct {
	ID    string       `yaml:"id"`
	Name  string       `yaml:"name"`
	Cards []BundleCard `yaml:"cards"`
}

// BundleCard is the content of one template card.
type BundleCard struct {
	ID     string            `yaml:"id"`
	Front  string            `yaml:"front"`
	Back   string            `yaml:"back"`
	Images map[string]string `yaml:"images"`
}

// LoadBundle reads the catalog from path, or the embedded catalog when path
// is empty.
func LoadBundle(path string) (*Bundle, error) {
	data := defaultBundle
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = raw
	}
	return ParseBundle(data)
}

// ParseBundle decodes and validates a YAML catalog.
func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks that ids are present and unique across the bundle.
func (b *Bundle) Validate() error {
	var errs []domain.FieldError
	decks := make(map[string]bool)
	cards := make(map[string]bool)

	for i, d := range b.Decks {
		switch {
		case strings.TrimSpace(d.ID) == "":
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("decks[%d].id", i), Message: "required"})
		case decks[d.ID]:
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("decks[%d].id", i), Message: "duplicate " + d.ID})
		}
		decks[d.ID] = true
		if strings.TrimSpace(d.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("decks[%d].name", i), Message: "required"})
		}

		for j, c := range d.Cards {
			field := fmt.Sprintf("decks[%d].cards[%d].id", i, j)
			switch {
			case strings.TrimSpace(c.ID) == "":
				errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			case cards[c.ID]:
				errs = append(errs, domain.FieldError{Field: field, Message: "duplicate " + c.ID})
			}
			cards[c.ID] = true
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Records flattens the bundle into catalog rows.
func (b *Bundle) Records() ([]domain.PublicDeck, []domain.PublicCard) {
	decks := make([]domain.PublicDeck, 0, len(b.Decks))
	var cards []domain.PublicCard

	for _, d := range b.Decks {
		decks = append(decks, domain.PublicDeck{ID: d.ID, Name: d.Name, Cards: len(d.Cards)})
		for _, c := range d.Cards {
			images := c.Images
			if images == nil {
				images = map[string]string{}
			}
			cards = append(cards, domain.PublicCard{
				ID:     c.ID,
				DeckID: d.ID,
				Front:  c.Front,
				Back:   c.Back,
				Images: images,
			})
		}
	}
	return decks, cards
}
