package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// DetectLineages groups court cards by suit. Two same-suit courts form an
// alliance, three or more a council. Cards come back sorted ascending by
// rank value.
func DetectLineages(base *knowledge.Base, deck *knowledge.DeckStyle, norm []cards.NormalizedCard) []LineageMatch {
	if base == nil {
		return nil
	}

	bySuit := make(map[cards.Suit][]cards.NormalizedCard, 4)
	for _, n := range norm {
		if !n.IsCourt() {
			continue
		}
		bySuit[n.Suit] = append(bySuit[n.Suit], n)
	}

	naming := deck.Naming()
	var matches []LineageMatch
	for _, suit := range cards.CanonicalSuits {
		courts := bySuit[suit]
		if len(courts) < 2 {
			continue
		}

		sort.Slice(courts, func(i, j int) bool { return courts[i].RankValue < courts[j].RankValue })

		kind := LineageAlliance
		if len(courts) >= 3 {
			kind = LineageCouncil
		}

		m := LineageMatch{
			Suit:      string(suit),
			Kind:      kind,
			Narrative: lineageNarrative(base, deck, suit, kind),
		}
		for _, c := range courts {
			m.Cards = append(m.Cards, c.RankValue)
			m.CardNames = append(m.CardNames, cards.DisplayName(c.Card, naming))
		}
		matches = append(matches, m)
	}
	return matches
}

// lineageNarrative composes the size-specific template plus the deck's
// note, trimmed. A suit without a template gets a generic sentence.
func lineageNarrative(base *knowledge.Base, deck *knowledge.DeckStyle, suit cards.Suit, kind string) string {
	var template, note string
	if lineage, ok := base.Lineage(suit); ok {
		if kind == LineageCouncil {
			template = lineage.Trio
		} else {
			template = lineage.Duo
		}
		if deck != nil {
			if n, ok := lineage.NoteFor(deck.Key); ok {
				note = n
			}
		}
	}
	if template == "" {
		template = fmt.Sprintf("Several %s court figures stand together in this spread.", strings.ToLower(string(suit)))
	}
	return strings.TrimSpace(strings.TrimSpace(template) + " " + note)
}
