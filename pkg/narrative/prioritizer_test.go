package narrative

import (
	"strings"
	"testing"

	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
	"github.com/fyrsmithlabs/arcana/pkg/patterns"
)

func assertRanked(t *testing.T, entries []Entry) {
	t.Helper()
	if len(entries) > MaxEntries {
		t.Fatalf("len = %d, want at most %d", len(entries), MaxEntries)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Priority < entries[i-1].Priority {
			t.Fatalf("entry %d has priority %d after %d", i, entries[i].Priority, entries[i-1].Priority)
		}
	}
}

func completeTriad(id, theme string) patterns.TriadMatch {
	return patterns.TriadMatch{
		ID:           id,
		Theme:        theme,
		Cards:        []int{13, 14, 17},
		Complete:     true,
		Completeness: 100,
		Strength:     patterns.StrengthPrimary,
		Narrative:    "The full arc is present.",
	}
}

func partialTriad(id, theme string) patterns.TriadMatch {
	return patterns.TriadMatch{
		ID:           id,
		Theme:        theme,
		Cards:        []int{13, 17},
		MissingCards: []int{14},
		Completeness: 67,
		Strength:     patterns.StrengthSupporting,
		Narrative:    "Two corners of the arc stand.",
	}
}

func journeyPattern(significance string) *patterns.JourneyPattern {
	return &patterns.JourneyPattern{
		Stage:        knowledge.JourneyInitiation,
		StageName:    "The Initiation",
		Cards:        []int{13, 14},
		CardCount:    2,
		TotalMajors:  3,
		Significance: significance,
		Theme:        "The crucible",
		Narrative:    "Something is being remade.",
	}
}

func dyad(theme, significance string, a, b int) patterns.DyadMatch {
	return patterns.DyadMatch{
		Cards:        []int{a, b},
		Theme:        theme,
		Narrative:    "Both cards stand together.",
		Significance: significance,
	}
}

func progression(suit, significance string, count int) patterns.ProgressionMatch {
	ranks := make([]int, count)
	for i := range ranks {
		ranks[i] = i + 1
	}
	return patterns.ProgressionMatch{
		Suit:         suit,
		Stage:        knowledge.StageBeginning,
		StageTheme:   "The " + strings.ToLower(suit) + " open",
		Narrative:    "The suit is moving.",
		Cards:        ranks,
		CardCount:    count,
		Significance: significance,
	}
}

func lineage(suit, kind string) patterns.LineageMatch {
	return patterns.LineageMatch{
		Suit:      suit,
		Kind:      kind,
		Cards:     []int{11, 13},
		Narrative: "Court figures gather.",
	}
}

func TestPrioritize_EmptyInputs(t *testing.T) {
	if got := Prioritize(nil); got != nil {
		t.Errorf("Prioritize(nil) = %+v, want nil", got)
	}
	if got := Prioritize(&patterns.Set{}); got != nil {
		t.Errorf("Prioritize(empty) = %+v, want nil", got)
	}
}

func TestPrioritize_SchemaOrdering(t *testing.T) {
	set := &patterns.Set{
		FoolsJourney: journeyPattern(patterns.SignificanceStrong),
		Triads:       []patterns.TriadMatch{completeTriad("death-temperance-star", "Healing Arc")},
		Dyads:        []patterns.DyadMatch{dyad("Full circle", knowledge.SignificanceHigh, 0, 21)},
		CourtLineages: []patterns.LineageMatch{
			lineage("Swords", patterns.LineageCouncil),
			lineage("Cups", patterns.LineageAlliance),
		},
	}

	got := Prioritize(set)
	assertRanked(t, got)

	wantTypes := []string{TypeTriad, TypeJourney, TypeCouncil, TypeDyad, TypeAlliance}
	wantPriorities := []int{1, 2, 3, 4, 4}
	if len(got) != len(wantTypes) {
		t.Fatalf("len = %d, want %d: %+v", len(got), len(wantTypes), got)
	}
	for i := range got {
		if got[i].Type != wantTypes[i] || got[i].Priority != wantPriorities[i] {
			t.Errorf("entry %d = %s/%d, want %s/%d", i, got[i].Type, got[i].Priority, wantTypes[i], wantPriorities[i])
		}
	}
	if !strings.HasPrefix(got[0].Text, "**Healing Arc** — ") {
		t.Errorf("triad text = %q", got[0].Text)
	}
	if !strings.HasPrefix(got[2].Text, "**Council of Swords** — ") {
		t.Errorf("council text = %q", got[2].Text)
	}
	if !strings.HasPrefix(got[4].Text, "**Alliance of Cups** — ") {
		t.Errorf("alliance text = %q", got[4].Text)
	}
}

func TestPrioritize_TruncatesAfterSort(t *testing.T) {
	set := &patterns.Set{
		FoolsJourney: journeyPattern(patterns.SignificanceStrong),
		Triads: []patterns.TriadMatch{
			completeTriad("death-temperance-star", "Healing Arc"),
			completeTriad("fool-magician-world", "The Great Cycle"),
			completeTriad("devil-tower-sun", "Breaking Free"),
			partialTriad("lovers-devil-tower", "Chains and Choices"),
		},
		SuitProgressions: []patterns.ProgressionMatch{
			progression("Wands", patterns.StrongProgression, 3),
			progression("Cups", patterns.StrongProgression, 4),
		},
		Dyads: []patterns.DyadMatch{dyad("Full circle", knowledge.SignificanceHigh, 0, 21)},
	}

	got := Prioritize(set)
	assertRanked(t, got)

	if len(got) != MaxEntries {
		t.Fatalf("len = %d, want %d", len(got), MaxEntries)
	}
	last := got[len(got)-1]
	if last.Type != TypeProgression || last.Suit != "Cups" {
		t.Errorf("last entry = %+v, want the larger progression", last)
	}
	for _, e := range got {
		if e.Type == TypeDyad || e.Type == TypePartialTriad {
			t.Errorf("low-priority entry survived truncation: %+v", e)
		}
	}
}

func TestPrioritize_PartialTriadGate(t *testing.T) {
	blocked := &patterns.Set{
		FoolsJourney: journeyPattern(patterns.SignificanceStrong),
		Triads: []patterns.TriadMatch{
			completeTriad("death-temperance-star", "Healing Arc"),
			partialTriad("fool-magician-world", "The Great Cycle"),
		},
		Dyads: []patterns.DyadMatch{
			dyad("Full circle", knowledge.SignificanceHigh, 0, 21),
			dyad("Desire and its chains", knowledge.SignificanceHigh, 6, 15),
		},
	}
	got := Prioritize(blocked)
	assertRanked(t, got)
	for _, e := range got {
		if e.Type == TypePartialTriad {
			t.Errorf("partial triad admitted with four candidates standing: %+v", e)
		}
	}

	admitted := &patterns.Set{
		Triads: []patterns.TriadMatch{
			partialTriad("fool-magician-world", "The Great Cycle"),
			partialTriad("lovers-devil-tower", "Chains and Choices"),
		},
		Dyads: []patterns.DyadMatch{dyad("Full circle", knowledge.SignificanceHigh, 0, 21)},
	}
	got = Prioritize(admitted)
	assertRanked(t, got)
	partials := 0
	for _, e := range got {
		if e.Type == TypePartialTriad {
			partials++
			if e.TriadID != "fool-magician-world" {
				t.Errorf("admitted partial = %q, want the first one", e.TriadID)
			}
			if e.Priority != 5 || e.Completeness != 67 {
				t.Errorf("partial entry = %+v", e)
			}
		}
	}
	if partials != 1 {
		t.Errorf("partials = %d, want exactly 1", partials)
	}
}

func TestPrioritize_EpithetSuitNarratives(t *testing.T) {
	set := &patterns.Set{
		ThothEpithets: &patterns.EpithetAnnotations{
			Cards: []patterns.CardEpithet{
				{Card: "Three of Swords", StyledCard: "Three of Swords", Suit: "Swords", Rank: 3, Title: "Sorrow", Astrology: "Saturn in Libra", Description: "Clarity bought with grief."},
				{Card: "Two of Swords", StyledCard: "Two of Swords", Suit: "Swords", Rank: 2, Title: "Peace", Astrology: "Moon in Libra", Description: "Conflict suspended."},
			},
			SuitNarratives: []patterns.SuitNarrative{
				{Suit: "Swords", CardCount: 2, Narrative: "Peace (Moon in Libra) → Sorrow (Saturn in Libra)."},
			},
		},
	}

	got := Prioritize(set)
	assertRanked(t, got)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1: %+v", len(got), got)
	}
	e := got[0]
	if e.Type != TypeSuitEpithets || e.Priority != 3 || e.Suit != "Swords" {
		t.Errorf("entry = %+v", e)
	}
	if len(e.Cards) != 2 || e.Cards[0] != 2 || e.Cards[1] != 3 {
		t.Errorf("cards = %v, want sorted ranks [2 3]", e.Cards)
	}
	if !strings.HasPrefix(e.Text, "**Swords arc** — Peace") {
		t.Errorf("text = %q", e.Text)
	}
}

func TestPrioritize_EpithetFallbackToSingles(t *testing.T) {
	set := &patterns.Set{
		ThothEpithets: &patterns.EpithetAnnotations{
			Cards: []patterns.CardEpithet{
				{Card: "Two of Wands", StyledCard: "Two of Wands", Suit: "Wands", Rank: 2, Title: "Dominion", Astrology: "Mars in Aries", Description: "Will established."},
				{Card: "Ten of Pentacles", StyledCard: "Ten of Disks (Ten of Pentacles)", Suit: "Pentacles", Rank: 10, Title: "Wealth", Astrology: "Mercury in Virgo", Description: "The estate become an inheritance."},
				{Card: "Six of Cups", StyledCard: "Six of Cups", Suit: "Cups", Rank: 6, Title: "Pleasure", Astrology: "Sun in Scorpio", Description: "Enjoyment balanced."},
			},
		},
	}

	got := Prioritize(set)
	assertRanked(t, got)
	if len(got) != 2 {
		t.Fatalf("len = %d, want the top two singles: %+v", len(got), got)
	}
	for _, e := range got {
		if e.Type != TypeEpithet || e.Priority != 4 {
			t.Errorf("entry = %+v", e)
		}
	}
	if got[0].Astrology != "Mars in Aries" || got[0].Text != "**Dominion** — Two of Wands: Will established." {
		t.Errorf("first single = %+v", got[0])
	}
	if got[1].Suit != "Pentacles" || got[1].Cards[0] != 10 {
		t.Errorf("second single = %+v", got[1])
	}
}

func TestPrioritize_EmergingProgressionGate(t *testing.T) {
	full := &patterns.Set{
		FoolsJourney: journeyPattern(patterns.SignificanceStrong),
		Triads: []patterns.TriadMatch{
			completeTriad("death-temperance-star", "Healing Arc"),
			completeTriad("fool-magician-world", "The Great Cycle"),
		},
		Dyads: []patterns.DyadMatch{
			dyad("Full circle", knowledge.SignificanceHigh, 0, 21),
			dyad("Desire and its chains", knowledge.SignificanceHigh, 6, 15),
		},
		SuitProgressions: []patterns.ProgressionMatch{progression("Cups", patterns.EmergingProgression, 2)},
	}
	for _, e := range Prioritize(full) {
		if e.Type == TypeProgression {
			t.Errorf("emerging progression admitted to a full list: %+v", e)
		}
	}

	short := &patterns.Set{
		Triads: []patterns.TriadMatch{completeTriad("death-temperance-star", "Healing Arc")},
		SuitProgressions: []patterns.ProgressionMatch{
			progression("Cups", patterns.EmergingProgression, 2),
			progression("Swords", patterns.EmergingProgression, 2),
		},
	}
	got := Prioritize(short)
	assertRanked(t, got)
	if len(got) != 2 || got[1].Type != TypeProgression || got[1].Priority != 6 {
		t.Fatalf("entries = %+v", got)
	}
	if got[1].Suit != "Cups" {
		t.Errorf("admitted progression = %q, want only the first", got[1].Suit)
	}
}

func TestPrioritize_DyadTiers(t *testing.T) {
	set := &patterns.Set{
		Dyads: []patterns.DyadMatch{
			dyad("Full circle", knowledge.SignificanceHigh, 0, 21),
			dyad("Desire and its chains", knowledge.SignificanceHigh, 6, 15),
			dyad("Bondage broken by collapse", knowledge.SignificanceHigh, 15, 16),
			dyad("Veiled knowing", knowledge.SignificanceMediumHigh, 2, 18),
			dyad("Nurture and order", knowledge.SignificanceMediumHigh, 3, 4),
			dyad("Power weighed", knowledge.SignificanceMedium, 8, 11),
		},
	}

	got := Prioritize(set)
	assertRanked(t, got)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3: %+v", len(got), got)
	}
	if got[0].Theme != "Full circle" || got[1].Theme != "Desire and its chains" {
		t.Errorf("high dyads = %q, %q", got[0].Theme, got[1].Theme)
	}
	if got[2].Priority != 7 || got[2].Theme != "Veiled knowing" {
		t.Errorf("medium-high entry = %+v", got[2])
	}
	for _, e := range got {
		if e.Significance == knowledge.SignificanceMedium {
			t.Errorf("medium dyad emitted: %+v", e)
		}
	}
}

func TestPrioritize_ClusterSizeOrdering(t *testing.T) {
	set := &patterns.Set{
		MarseillePip: &patterns.PipNumerology{
			Clusters: []patterns.PipCluster{
				{Rank: 2, Keyword: "polarity", Description: "The first division.", CardCount: 2},
				{Rank: 7, Keyword: "trial", Description: "The exception that tests the rule.", CardCount: 3},
				{Rank: 9, Keyword: "attainment", Description: "Nearly delivered.", CardCount: 2},
			},
		},
	}

	got := Prioritize(set)
	assertRanked(t, got)
	if len(got) != 2 {
		t.Fatalf("len = %d, want the two largest clusters: %+v", len(got), got)
	}
	if got[0].Theme != "trial" || got[1].Theme != "polarity" {
		t.Errorf("cluster order = %q, %q", got[0].Theme, got[1].Theme)
	}
	if got[0].Text != "**Trial** — The exception that tests the rule." {
		t.Errorf("cluster text = %q", got[0].Text)
	}
	if len(got[0].Cards) != 3 || got[0].Cards[0] != 7 {
		t.Errorf("cluster cards = %v, want rank repeated per card", got[0].Cards)
	}
}

func TestPrioritize_MinimalJourney(t *testing.T) {
	set := &patterns.Set{FoolsJourney: journeyPattern(patterns.SignificanceMinimal)}

	got := Prioritize(set)
	if len(got) != 1 {
		t.Fatalf("len = %d: %+v", len(got), got)
	}
	e := got[0]
	if e.Type != TypeJourney || e.Priority != 6 || e.Stage != knowledge.JourneyInitiation {
		t.Errorf("entry = %+v", e)
	}
	if e.Text != "**The Initiation** — Something is being remade." {
		t.Errorf("text = %q", e.Text)
	}
}

func TestPrioritize_BoundAndOrder(t *testing.T) {
	mega := &patterns.Set{
		FoolsJourney: journeyPattern(patterns.SignificanceModerate),
		Triads: []patterns.TriadMatch{
			completeTriad("death-temperance-star", "Healing Arc"),
			partialTriad("fool-magician-world", "The Great Cycle"),
		},
		Dyads: []patterns.DyadMatch{
			dyad("Full circle", knowledge.SignificanceHigh, 0, 21),
			dyad("Veiled knowing", knowledge.SignificanceMediumHigh, 2, 18),
		},
		SuitProgressions: []patterns.ProgressionMatch{
			progression("Wands", patterns.StrongProgression, 3),
			progression("Cups", patterns.EmergingProgression, 2),
		},
		CourtLineages: []patterns.LineageMatch{
			lineage("Swords", patterns.LineageCouncil),
			lineage("Cups", patterns.LineageAlliance),
		},
		MarseillePip: &patterns.PipNumerology{
			Clusters: []patterns.PipCluster{{Rank: 2, Keyword: "polarity", Description: "The first division.", CardCount: 2}},
		},
	}

	sets := []*patterns.Set{
		mega,
		{FoolsJourney: journeyPattern(patterns.SignificanceStrong)},
		{Triads: []patterns.TriadMatch{completeTriad("death-temperance-star", "Healing Arc")}},
		{Dyads: []patterns.DyadMatch{dyad("Full circle", knowledge.SignificanceHigh, 0, 21)}},
		{CourtLineages: []patterns.LineageMatch{lineage("Cups", patterns.LineageAlliance)}},
	}
	for i, set := range sets {
		got := Prioritize(set)
		if len(got) == 0 {
			t.Errorf("set %d produced no entries", i)
		}
		assertRanked(t, got)
	}
}
