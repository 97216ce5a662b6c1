package patterns

import (
	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// ClusterNumerology applies the Marseille pip-numerology overlay: pips
// are grouped across suits by rank value, and every rank held by two or
// more cards becomes a cluster carrying the deck's keyword, description,
// and pip geometry. Active only for the marseille style.
func ClusterNumerology(deck *knowledge.DeckStyle, norm []cards.NormalizedCard) *PipNumerology {
	if deck == nil || deck.Key != knowledge.DeckMarseille {
		return nil
	}

	naming := deck.Naming()
	byRank := make(map[int][]cards.NormalizedCard, 10)
	for _, n := range norm {
		if !n.IsPip() {
			continue
		}
		byRank[n.RankValue] = append(byRank[n.RankValue], n)
	}

	var clusters []PipCluster
	for rank := cards.MinPipRank; rank <= cards.MaxPipRank; rank++ {
		group := byRank[rank]
		if len(group) < 2 {
			continue
		}
		theme, ok := deck.NumerologyFor(rank)
		if !ok {
			continue
		}
		c := PipCluster{
			Rank:        rank,
			Keyword:     theme.Keyword,
			Description: theme.Description,
			Geometry:    theme.Geometry,
			CardCount:   len(group),
		}
		for _, n := range group {
			c.Cards = append(c.Cards, cards.DisplayName(n.Card, naming))
		}
		clusters = append(clusters, c)
	}
	if len(clusters) == 0 {
		return nil
	}
	return &PipNumerology{Clusters: clusters}
}
