package patterns

import (
	"testing"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// testBase loads the embedded knowledge base once per test.
func testBase(t *testing.T) *knowledge.Base {
	t.Helper()
	base, err := knowledge.Default()
	if err != nil {
		t.Fatalf("knowledge.Default: %v", err)
	}
	return base
}

// testDeck resolves a deck style from the embedded base.
func testDeck(t *testing.T, key string) *knowledge.DeckStyle {
	t.Helper()
	deck, err := testBase(t).Deck(key)
	if err != nil {
		t.Fatalf("Deck(%q): %v", key, err)
	}
	return deck
}

func majors(numbers ...int) []cards.Card {
	spread := make([]cards.Card, 0, len(numbers))
	for _, n := range numbers {
		spread = append(spread, cards.Major(n, ""))
	}
	return spread
}

func normalize(spread []cards.Card) []cards.NormalizedCard {
	return cards.NormalizeAll(spread)
}

func pip(suit cards.Suit, rank int) cards.Card {
	return cards.Minor(suit, "", rank)
}
