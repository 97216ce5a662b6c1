package narrative

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
	"github.com/fyrsmithlabs/arcana/pkg/patterns"
)

// MaxEntries bounds the prioritized output.
const MaxEntries = 5

// Prioritize flattens a pattern set into at most MaxEntries highlights.
//
// The schema, in collection order: complete triads (1); a strong journey
// stage (2); the two strongest suit progressions, two court councils and
// two Thoth suit narratives (3, epithets falling back to 4 when no suit
// gathered two annotated cards); a moderate journey stage, two
// high-significance dyads and two court alliances (4); one partial triad
// while fewer than four candidates stand (5); a minimal journey stage,
// one emerging progression while the list is short, and the two largest
// numerology clusters (6); one medium-high dyad while the list is short
// (7). Medium-significance dyads are never emitted. The admission gates
// read the running candidate count, so a rule's position in this
// sequence changes what its gate sees.
func Prioritize(set *patterns.Set) []Entry {
	if set.Empty() {
		return nil
	}

	var entries []Entry

	for _, tm := range set.Triads {
		if tm.Complete {
			entries = append(entries, triadEntry(tm))
		}
	}

	if j := set.FoolsJourney; j != nil && j.Significance == patterns.SignificanceStrong {
		entries = append(entries, journeyEntry(j, 2))
	}

	strong := progressionsBySignificance(set.SuitProgressions, patterns.StrongProgression)
	sort.SliceStable(strong, func(i, j int) bool {
		return strong[i].CardCount > strong[j].CardCount
	})
	if len(strong) > 2 {
		strong = strong[:2]
	}
	for _, pm := range strong {
		entries = append(entries, progressionEntry(pm, 3))
	}

	councils := lineagesByKind(set.CourtLineages, patterns.LineageCouncil)
	if len(councils) > 2 {
		councils = councils[:2]
	}
	for _, lm := range councils {
		entries = append(entries, lineageEntry(lm, 3, TypeCouncil))
	}

	if ep := set.ThothEpithets; ep != nil {
		if len(ep.SuitNarratives) > 0 {
			narratives := ep.SuitNarratives
			if len(narratives) > 2 {
				narratives = narratives[:2]
			}
			for _, sn := range narratives {
				entries = append(entries, suitEpithetsEntry(sn, ranksForSuit(ep.Cards, sn.Suit)))
			}
		} else {
			singles := ep.Cards
			if len(singles) > 2 {
				singles = singles[:2]
			}
			for _, ce := range singles {
				entries = append(entries, epithetEntry(ce))
			}
		}
	}

	if j := set.FoolsJourney; j != nil && j.Significance == patterns.SignificanceModerate {
		entries = append(entries, journeyEntry(j, 4))
	}

	high := dyadsBySignificance(set.Dyads, knowledge.SignificanceHigh)
	if len(high) > 2 {
		high = high[:2]
	}
	for _, dm := range high {
		entries = append(entries, dyadEntry(dm, 4))
	}

	alliances := lineagesByKind(set.CourtLineages, patterns.LineageAlliance)
	if len(alliances) > 2 {
		alliances = alliances[:2]
	}
	for _, lm := range alliances {
		entries = append(entries, lineageEntry(lm, 4, TypeAlliance))
	}

	if len(entries) < 4 {
		for _, tm := range set.Triads {
			if !tm.Complete {
				entries = append(entries, triadEntry(tm))
				break
			}
		}
	}

	if j := set.FoolsJourney; j != nil && j.Significance == patterns.SignificanceMinimal {
		entries = append(entries, journeyEntry(j, 6))
	}

	if len(entries) < MaxEntries {
		if emerging := progressionsBySignificance(set.SuitProgressions, patterns.EmergingProgression); len(emerging) > 0 {
			entries = append(entries, progressionEntry(emerging[0], 6))
		}
	}

	if mp := set.MarseillePip; mp != nil {
		clusters := append([]patterns.PipCluster(nil), mp.Clusters...)
		sort.SliceStable(clusters, func(i, j int) bool {
			return clusters[i].CardCount > clusters[j].CardCount
		})
		if len(clusters) > 2 {
			clusters = clusters[:2]
		}
		for _, pc := range clusters {
			entries = append(entries, clusterEntry(pc))
		}
	}

	if len(entries) < MaxEntries {
		if mh := dyadsBySignificance(set.Dyads, knowledge.SignificanceMediumHigh); len(mh) > 0 {
			entries = append(entries, dyadEntry(mh[0], 7))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority < entries[j].Priority
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

func triadEntry(tm patterns.TriadMatch) Entry {
	e := Entry{
		Priority:     1,
		Type:         TypeTriad,
		Text:         boldLead(tm.Theme, tm.Narrative),
		Cards:        tm.Cards,
		Theme:        tm.Theme,
		TriadID:      tm.ID,
		Completeness: tm.Completeness,
	}
	if !tm.Complete {
		e.Priority = 5
		e.Type = TypePartialTriad
	}
	return e
}

func journeyEntry(j *patterns.JourneyPattern, priority int) Entry {
	return Entry{
		Priority:     priority,
		Type:         TypeJourney,
		Text:         boldLead(j.StageName, j.Narrative),
		Cards:        j.Cards,
		Stage:        j.Stage,
		Significance: j.Significance,
		Theme:        j.Theme,
	}
}

func progressionEntry(pm patterns.ProgressionMatch, priority int) Entry {
	return Entry{
		Priority:     priority,
		Type:         TypeProgression,
		Text:         boldLead(pm.StageTheme, pm.Narrative),
		Cards:        pm.Cards,
		Suit:         pm.Suit,
		Stage:        pm.Stage,
		Significance: pm.Significance,
	}
}

func lineageEntry(lm patterns.LineageMatch, priority int, entryType string) Entry {
	lead := fmt.Sprintf("%s of %s", titled(lm.Kind), lm.Suit)
	return Entry{
		Priority: priority,
		Type:     entryType,
		Text:     boldLead(lead, lm.Narrative),
		Cards:    lm.Cards,
		Suit:     lm.Suit,
	}
}

func dyadEntry(dm patterns.DyadMatch, priority int) Entry {
	return Entry{
		Priority:     priority,
		Type:         TypeDyad,
		Text:         boldLead(dm.Theme, dm.Narrative),
		Cards:        dm.Cards,
		Significance: dm.Significance,
		Theme:        dm.Theme,
	}
}

func suitEpithetsEntry(sn patterns.SuitNarrative, ranks []int) Entry {
	return Entry{
		Priority: 3,
		Type:     TypeSuitEpithets,
		Text:     boldLead(sn.Suit+" arc", sn.Narrative),
		Cards:    ranks,
		Suit:     sn.Suit,
	}
}

func epithetEntry(ce patterns.CardEpithet) Entry {
	return Entry{
		Priority:  4,
		Type:      TypeEpithet,
		Text:      boldLead(ce.Title, ce.StyledCard+": "+ce.Description),
		Cards:     []int{ce.Rank},
		Suit:      ce.Suit,
		Astrology: ce.Astrology,
	}
}

func clusterEntry(pc patterns.PipCluster) Entry {
	cards := make([]int, pc.CardCount)
	for i := range cards {
		cards[i] = pc.Rank
	}
	return Entry{
		Priority: 6,
		Type:     TypeNumerology,
		Text:     boldLead(titled(pc.Keyword), pc.Description),
		Cards:    cards,
		Theme:    pc.Keyword,
	}
}

func progressionsBySignificance(matches []patterns.ProgressionMatch, significance string) []patterns.ProgressionMatch {
	var out []patterns.ProgressionMatch
	for _, pm := range matches {
		if pm.Significance == significance {
			out = append(out, pm)
		}
	}
	return out
}

func lineagesByKind(matches []patterns.LineageMatch, kind string) []patterns.LineageMatch {
	var out []patterns.LineageMatch
	for _, lm := range matches {
		if lm.Kind == kind {
			out = append(out, lm)
		}
	}
	return out
}

func dyadsBySignificance(matches []patterns.DyadMatch, significance string) []patterns.DyadMatch {
	var out []patterns.DyadMatch
	for _, dm := range matches {
		if dm.Significance == significance {
			out = append(out, dm)
		}
	}
	return out
}

func ranksForSuit(annotated []patterns.CardEpithet, suit string) []int {
	var ranks []int
	for _, ce := range annotated {
		if ce.Suit == suit {
			ranks = append(ranks, ce.Rank)
		}
	}
	sort.Ints(ranks)
	return ranks
}

func boldLead(lead, body string) string {
	return fmt.Sprintf("**%s** — %s", lead, body)
}

// titled uppercases the first letters of a lowercase data key for
// display. cases.Caser carries internal state, so each call builds a
// fresh one.
func titled(s string) string {
	return cases.Title(language.English).String(s)
}
