package patterns

import (
	"sort"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// journeyStageFor buckets a major number into its life stage:
// 0-7 departure, 8-14 initiation, 15-21 return.
func journeyStageFor(number int) string {
	switch {
	case number <= 7:
		return knowledge.JourneyDeparture
	case number <= 14:
		return knowledge.JourneyInitiation
	default:
		return knowledge.JourneyReturn
	}
}

// DetectJourney finds the dominant Fool's Journey stage among the
// spread's Major Arcana. Returns nil when no Majors are present, or when
// two or more stages tie for the maximum count: ambiguous dominance is
// suppressed rather than broken arbitrarily.
func DetectJourney(base *knowledge.Base, deck *knowledge.DeckStyle, norm []cards.NormalizedCard) *JourneyPattern {
	if base == nil {
		return nil
	}

	byStage := make(map[string][]cards.NormalizedCard, 3)
	total := 0
	for _, n := range norm {
		if n.Kind != cards.KindMajor {
			continue
		}
		stage := journeyStageFor(n.Number)
		byStage[stage] = append(byStage[stage], n)
		total++
	}
	if total == 0 {
		return nil
	}

	dominant, count, tied := "", 0, false
	for _, stage := range []string{knowledge.JourneyDeparture, knowledge.JourneyInitiation, knowledge.JourneyReturn} {
		c := len(byStage[stage])
		switch {
		case c > count:
			dominant, count, tied = stage, c, false
		case c == count && c > 0:
			tied = true
		}
	}
	if tied {
		return nil
	}

	matched := byStage[dominant]
	sort.Slice(matched, func(i, j int) bool { return matched[i].Number < matched[j].Number })

	var significance string
	switch {
	case count >= 3:
		significance = SignificanceStrong
	case count == 2:
		significance = SignificanceModerate
	case total >= 2:
		significance = SignificanceModerate
	default:
		significance = SignificanceMinimal
	}

	p := &JourneyPattern{
		Stage:        dominant,
		CardCount:    count,
		TotalMajors:  total,
		Significance: significance,
	}
	naming := deck.Naming()
	for _, m := range matched {
		p.Cards = append(p.Cards, m.Number)
		p.CardNames = append(p.CardNames, cards.DisplayName(m.Card, naming))
	}
	if stage, ok := base.JourneyStage(dominant); ok {
		p.StageName = stage.Name
		p.Theme = stage.Theme
		p.Narrative = stage.Narrative
	}
	return p
}
