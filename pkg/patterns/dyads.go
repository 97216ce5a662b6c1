package patterns

import (
	"sort"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// MatchDyads returns every knowledge-base dyad whose two cards are both
// present, ordered by descending significance.
func MatchDyads(base *knowledge.Base, deck *knowledge.DeckStyle, norm []cards.NormalizedCard) []DyadMatch {
	if base == nil {
		return nil
	}
	present := presentMajors(norm)
	if len(present) < 2 {
		return nil
	}

	naming := deck.Naming()
	var matches []DyadMatch
	for _, d := range base.Dyads {
		if len(d.Cards) != 2 {
			continue
		}
		a, okA := present[d.Cards[0]]
		b, okB := present[d.Cards[1]]
		if !okA || !okB {
			continue
		}
		matches = append(matches, DyadMatch{
			Cards:        []int{d.Cards[0], d.Cards[1]},
			CardNames:    []string{cards.DisplayName(a.Card, naming), cards.DisplayName(b.Card, naming)},
			Theme:        d.Theme,
			Category:     d.Category,
			Narrative:    d.Narrative,
			Significance: d.Significance,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return knowledge.DyadSignificanceRank(matches[i].Significance) >
			knowledge.DyadSignificanceRank(matches[j].Significance)
	})
	return matches
}
