package patterns

import (
	"sort"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// AnalyzeProgressions finds the dominant developmental stage per suit
// among the spread's pip cards. A suit enters analysis with two or more
// pips, and yields a progression only when its leading stage holds at
// least two cards. Ties go to the earlier stage in the suit's declared
// order. The full per-stage distribution rides along for diagnostics.
func AnalyzeProgressions(base *knowledge.Base, deck *knowledge.DeckStyle, norm []cards.NormalizedCard) []ProgressionMatch {
	if base == nil {
		return nil
	}

	bySuit := make(map[cards.Suit][]cards.NormalizedCard, 4)
	for _, n := range norm {
		if !n.IsPip() {
			continue
		}
		bySuit[n.Suit] = append(bySuit[n.Suit], n)
	}

	naming := deck.Naming()
	var matches []ProgressionMatch
	for _, suit := range cards.CanonicalSuits {
		pips := bySuit[suit]
		if len(pips) < 2 {
			continue
		}
		prog, ok := base.Progression(suit)
		if !ok {
			continue
		}

		byStage := make(map[string][]cards.NormalizedCard, 3)
		for _, p := range pips {
			if stage, ok := prog.StageForRank(p.RankValue); ok {
				byStage[stage.Key] = append(byStage[stage.Key], p)
			}
		}

		var dominant knowledge.ProgressionStage
		count := 0
		for _, s := range prog.Stages {
			if c := len(byStage[s.Key]); c > count {
				dominant, count = s, c
			}
		}
		if count < 2 {
			continue
		}

		significance := EmergingProgression
		if count >= 3 {
			significance = StrongProgression
		}

		matched := byStage[dominant.Key]
		sort.Slice(matched, func(i, j int) bool { return matched[i].RankValue < matched[j].RankValue })

		m := ProgressionMatch{
			Suit:         string(suit),
			Stage:        dominant.Key,
			StageTheme:   dominant.Theme,
			Narrative:    dominant.Narrative,
			CardCount:    count,
			Distribution: make(map[string]int, len(prog.Stages)),
			Significance: significance,
		}
		for _, s := range prog.Stages {
			m.Distribution[s.Key] = len(byStage[s.Key])
		}
		for _, p := range matched {
			m.Cards = append(m.Cards, p.RankValue)
			m.CardNames = append(m.CardNames, cards.DisplayName(p.Card, naming))
		}
		matches = append(matches, m)
	}
	return matches
}
