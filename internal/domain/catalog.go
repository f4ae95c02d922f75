package domain

// PublicDeck is a catalog template deck. Cards is computed on read and
// Downloads counts card fetches.
type PublicDeck struct {
	ID        string
	Name      string
	Downloads int
	Cards     int
}

// PublicCard is the content-only projection of a catalog card.
type PublicCard struct {
	ID     string
	DeckID string
	Front  string
	Back   string
	Images map[string]string
}
