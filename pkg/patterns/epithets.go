package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// AnnotateEpithets applies the Thoth epithet overlay: per-card titles,
// decan astrology, and descriptions from the deck's epithet table, plus a
// synthesized suit-level narrative wherever two or more annotated cards
// share a suit. Active only for the thoth-a1 style.
func AnnotateEpithets(deck *knowledge.DeckStyle, norm []cards.NormalizedCard) *EpithetAnnotations {
	if deck == nil || deck.Key != knowledge.DeckThoth {
		return nil
	}

	naming := deck.Naming()
	var entries []CardEpithet
	for _, n := range norm {
		if !n.IsPip() {
			continue
		}
		label := cards.DisplayName(n.Card, nil)
		e, ok := deck.EpithetFor(label)
		if !ok {
			continue
		}
		entries = append(entries, CardEpithet{
			Card:        label,
			StyledCard:  cards.DisplayName(n.Card, naming),
			Suit:        string(n.Suit),
			Rank:        n.RankValue,
			Title:       e.Title,
			Astrology:   e.Astrology,
			Description: e.Description,
		})
	}
	if len(entries) == 0 {
		return nil
	}

	return &EpithetAnnotations{
		Cards:          entries,
		SuitNarratives: suitNarratives(entries),
	}
}

// suitNarratives synthesizes one narrative per suit holding two or more
// annotated cards: the epithet titles arrow-joined in rank order, tagged
// with their decans, followed by up to two description snippets.
func suitNarratives(entries []CardEpithet) []SuitNarrative {
	bySuit := make(map[string][]CardEpithet, 4)
	for _, e := range entries {
		bySuit[e.Suit] = append(bySuit[e.Suit], e)
	}

	var narratives []SuitNarrative
	for _, suit := range cards.CanonicalSuits {
		group := bySuit[string(suit)]
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Rank < group[j].Rank })

		seq := make([]string, 0, len(group))
		for _, e := range group {
			if e.Astrology != "" {
				seq = append(seq, fmt.Sprintf("%s (%s)", e.Title, e.Astrology))
			} else {
				seq = append(seq, e.Title)
			}
		}
		parts := []string{strings.Join(seq, " → ") + "."}
		for i, e := range group {
			if i >= 2 {
				break
			}
			if e.Description != "" {
				parts = append(parts, e.Description)
			}
		}

		narratives = append(narratives, SuitNarrative{
			Suit:      string(suit),
			CardCount: len(group),
			Narrative: strings.Join(parts, " "),
		})
	}
	return narratives
}
