package patterns

import (
	"strings"
	"testing"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

func TestAnnotateEpithets_ThothOnly(t *testing.T) {
	spread := normalize([]cards.Card{pip(cards.Wands, 2)})

	if got := AnnotateEpithets(testDeck(t, ""), spread); got != nil {
		t.Errorf("rws style produced epithets: %+v", got)
	}
	if got := AnnotateEpithets(testDeck(t, knowledge.DeckMarseille), spread); got != nil {
		t.Errorf("marseille style produced epithets: %+v", got)
	}
	if got := AnnotateEpithets(nil, spread); got != nil {
		t.Errorf("nil deck produced epithets: %+v", got)
	}
}

func TestAnnotateEpithets_PerCardEntries(t *testing.T) {
	thoth := testDeck(t, knowledge.DeckThoth)

	spread := []cards.Card{
		pip(cards.Wands, 2),
		pip(cards.Pentacles, 10),
		// Majors carry no epithet; courts are not in the epithet table.
		cards.Major(13, ""),
		cards.Minor(cards.Wands, "Queen", 13),
	}
	got := AnnotateEpithets(thoth, normalize(spread))
	if got == nil || len(got.Cards) != 2 {
		t.Fatalf("entries = %+v, want 2 cards", got)
	}

	two := got.Cards[0]
	if two.Card != "Two of Wands" || two.Title != "Dominion" || two.Astrology != "Mars in Aries" {
		t.Errorf("entry = %+v", two)
	}
	if two.StyledCard != "Two of Wands" {
		t.Errorf("StyledCard = %q, wands keep their name under thoth", two.StyledCard)
	}

	ten := got.Cards[1]
	if ten.Title != "Wealth" || ten.Astrology != "Mercury in Virgo" {
		t.Errorf("entry = %+v", ten)
	}
	if ten.StyledCard != "Ten of Disks (Ten of Pentacles)" {
		t.Errorf("StyledCard = %q", ten.StyledCard)
	}

	if len(got.SuitNarratives) != 0 {
		t.Errorf("two lone suits synthesized a narrative: %+v", got.SuitNarratives)
	}
}

func TestAnnotateEpithets_SuitNarrative(t *testing.T) {
	thoth := testDeck(t, knowledge.DeckThoth)

	spread := []cards.Card{
		pip(cards.Swords, 3),
		pip(cards.Swords, 2),
		pip(cards.Cups, 6),
	}
	got := AnnotateEpithets(thoth, normalize(spread))
	if got == nil {
		t.Fatal("expected annotations")
	}
	if len(got.Cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(got.Cards))
	}
	if len(got.SuitNarratives) != 1 {
		t.Fatalf("suit narratives = %+v, want 1", got.SuitNarratives)
	}

	n := got.SuitNarratives[0]
	if n.Suit != "Swords" || n.CardCount != 2 {
		t.Errorf("suit/count = %q/%d", n.Suit, n.CardCount)
	}
	if !strings.HasPrefix(n.Narrative, "Peace (Moon in Libra) → Sorrow (Saturn in Libra).") {
		t.Errorf("Narrative = %q, want rank-ordered arrow sequence", n.Narrative)
	}
	if !strings.Contains(n.Narrative, "Conflict suspended in equilibrium") {
		t.Errorf("Narrative = %q, want first description snippet", n.Narrative)
	}
}

func TestAnnotateEpithets_AceWithoutDecan(t *testing.T) {
	thoth := testDeck(t, knowledge.DeckThoth)

	spread := []cards.Card{pip(cards.Cups, 1), pip(cards.Cups, 2)}
	got := AnnotateEpithets(thoth, normalize(spread))
	if got == nil || len(got.SuitNarratives) != 1 {
		t.Fatalf("annotations = %+v", got)
	}
	if !strings.HasPrefix(got.SuitNarratives[0].Narrative, "Root of Water → Love (Venus in Cancer).") {
		t.Errorf("Narrative = %q, ace must appear without an astrology tag", got.SuitNarratives[0].Narrative)
	}
}
