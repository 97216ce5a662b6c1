package patterns

import (
	"sort"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// presentMajors indexes the spread's Major Arcana by number. The first
// occurrence wins so display names stay tied to an actual drawn card.
func presentMajors(norm []cards.NormalizedCard) map[int]cards.NormalizedCard {
	present := make(map[int]cards.NormalizedCard)
	for _, n := range norm {
		if n.Kind != cards.KindMajor {
			continue
		}
		if _, ok := present[n.Number]; !ok {
			present[n.Number] = n
		}
	}
	return present
}

// MatchTriads intersects each knowledge-base triad with the spread's
// Major Arcana. Two present members yield a partial match (completeness
// 67, supporting), all three a complete match (100, primary). Complete
// matches sort before partial ones.
func MatchTriads(base *knowledge.Base, deck *knowledge.DeckStyle, norm []cards.NormalizedCard) []TriadMatch {
	if base == nil {
		return nil
	}
	present := presentMajors(norm)
	if len(present) < 2 {
		return nil
	}

	naming := deck.Naming()
	var matches []TriadMatch
	for _, t := range base.Triads {
		var matchedIdx, missing []int
		for i, num := range t.Cards {
			if _, ok := present[num]; ok {
				matchedIdx = append(matchedIdx, i)
			} else {
				missing = append(missing, num)
			}
		}
		if len(matchedIdx) < 2 {
			continue
		}

		m := TriadMatch{ID: t.ID, Theme: t.Theme}
		for _, i := range matchedIdx {
			num := t.Cards[i]
			m.Cards = append(m.Cards, num)
			m.CardNames = append(m.CardNames, cards.DisplayName(present[num].Card, naming))
		}
		if len(matchedIdx) == 3 {
			m.Complete = true
			m.Completeness = 100
			m.Strength = StrengthPrimary
			m.Narrative = t.Narrative
		} else {
			m.Completeness = 67 // round(2/3 * 100)
			m.Strength = StrengthSupporting
			m.MissingCards = missing
			key := knowledge.PairKey(t.Names[matchedIdx[0]], t.Names[matchedIdx[1]])
			if text, ok := t.PartialNarratives[key]; ok {
				m.Narrative = text
			} else {
				m.Narrative = t.Narrative
			}
		}
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Complete != matches[j].Complete {
			return matches[i].Complete
		}
		return len(matches[i].Cards) > len(matches[j].Cards)
	})
	return matches
}
