package knowledge

import (
	"errors"
	"testing"
)

// validBase builds a fresh minimal base that passes Validate, for mutation
// in the tests below.
func validBase() *Base {
	stages := func() []ProgressionStage {
		return []ProgressionStage{
			{Key: StageBeginning, Ranks: []int{1, 2, 3}, Theme: "a", Narrative: "a"},
			{Key: StageChallenge, Ranks: []int{4, 5, 6, 7}, Theme: "b", Narrative: "b"},
			{Key: StageMastery, Ranks: []int{8, 9, 10}, Theme: "c", Narrative: "c"},
		}
	}
	return &Base{
		Triads: []Triad{{
			ID:        "test-arc",
			Cards:     []int{0, 1, 2},
			Names:     []string{"The Fool", "The Magician", "The High Priestess"},
			Theme:     "Test Arc",
			Narrative: "The whole arc.",
			PartialNarratives: map[string]string{
				"fool+magician": "Two thirds of the arc.",
			},
		}},
		Dyads: []Dyad{{
			Cards:        []int{13, 17},
			Names:        []string{"Death", "The Star"},
			Theme:        "t",
			Category:     "renewal",
			Narrative:    "n",
			Significance: SignificanceHigh,
		}},
		Journey: []JourneyStage{
			{Key: JourneyDeparture, Theme: "a", Narrative: "a"},
			{Key: JourneyInitiation, Theme: "b", Narrative: "b"},
			{Key: JourneyReturn, Theme: "c", Narrative: "c"},
		},
		Progressions: []SuitProgression{
			{Suit: "Wands", Stages: stages()},
			{Suit: "Cups", Stages: stages()},
			{Suit: "Swords", Stages: stages()},
			{Suit: "Pentacles", Stages: stages()},
		},
		Lineages: []CourtLineage{
			{Suit: "Wands", Duo: "two", Trio: "three"},
			{Suit: "Cups", Duo: "two", Trio: "three"},
			{Suit: "Swords", Duo: "two", Trio: "three"},
			{Suit: "Pentacles", Duo: "two", Trio: "three"},
		},
		Decks: []DeckStyle{
			{Key: DeckRWS, Name: "Rider-Waite-Smith (1909)", Aliases: []string{"rws"}},
		},
		Passages: []Passage{
			{Key: "test-arc", Text: "long form"},
			{Key: "death+star", Text: "long form"},
		},
	}
}

func TestValidate_AcceptsValidBase(t *testing.T) {
	if err := validBase().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Base)
		wantErr error
	}{
		{
			name:    "duplicate triad id",
			mutate:  func(b *Base) { b.Triads = append(b.Triads, b.Triads[0]) },
			wantErr: ErrDuplicateEntry,
		},
		{
			name:    "triad with two cards",
			mutate:  func(b *Base) { b.Triads[0].Cards = []int{0, 1} },
			wantErr: ErrTriadShape,
		},
		{
			name:    "triad card out of range",
			mutate:  func(b *Base) { b.Triads[0].Cards = []int{0, 1, 22} },
			wantErr: ErrTriadShape,
		},
		{
			name:    "triad partial key for foreign pair",
			mutate:  func(b *Base) { b.Triads[0].PartialNarratives["death+star"] = "x" },
			wantErr: ErrTriadShape,
		},
		{
			name:    "dyad with repeated card",
			mutate:  func(b *Base) { b.Dyads[0].Cards = []int{13, 13} },
			wantErr: ErrDyadShape,
		},
		{
			name:    "dyad unknown significance",
			mutate:  func(b *Base) { b.Dyads[0].Significance = "cosmic" },
			wantErr: ErrDyadShape,
		},
		{
			name:    "journey stage missing",
			mutate:  func(b *Base) { b.Journey = b.Journey[:2] },
			wantErr: ErrJourneyShape,
		},
		{
			name:    "progression suit missing",
			mutate:  func(b *Base) { b.Progressions = b.Progressions[:3] },
			wantErr: ErrStageShape,
		},
		{
			name: "progression ranks overlap",
			mutate: func(b *Base) {
				b.Progressions[0].Stages[1].Ranks = []int{3, 4, 5, 6, 7}
			},
			wantErr: ErrStageShape,
		},
		{
			name: "progression ranks leave a gap",
			mutate: func(b *Base) {
				b.Progressions[0].Stages[2].Ranks = []int{8, 9}
			},
			wantErr: ErrStageShape,
		},
		{
			name:    "lineage suit missing",
			mutate:  func(b *Base) { b.Lineages = b.Lineages[:3] },
			wantErr: ErrLineageShape,
		},
		{
			name: "lineage note for unknown deck",
			mutate: func(b *Base) {
				b.Lineages[0].DeckNotes = []DeckNote{{Deck: "golden-dawn", Note: "x"}}
			},
			wantErr: ErrLineageShape,
		},
		{
			name:    "default deck absent",
			mutate:  func(b *Base) { b.Decks[0].Key = "other" },
			wantErr: ErrDeckShape,
		},
		{
			name: "numerology rank out of range",
			mutate: func(b *Base) {
				b.Decks[0].Numerology = []NumerologyTheme{{Rank: 11, Keyword: "x"}}
			},
			wantErr: ErrDeckShape,
		},
		{
			name:    "high dyad without passage",
			mutate:  func(b *Base) { b.Passages = b.Passages[:1] },
			wantErr: ErrMissingPassage,
		},
		{
			name:    "triad without passage",
			mutate:  func(b *Base) { b.Passages = b.Passages[1:] },
			wantErr: ErrMissingPassage,
		},
		{
			name: "orphan passage",
			mutate: func(b *Base) {
				b.Passages = append(b.Passages, Passage{Key: "nobody", Text: "x"})
			},
			wantErr: ErrOrphanPassage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBase()
			tt.mutate(b)
			err := b.Validate()
			if err == nil {
				t.Fatal("Validate accepted a broken base")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_MediumDyadNeedsNoPassage(t *testing.T) {
	b := validBase()
	b.Dyads[0].Significance = SignificanceMedium
	b.Passages = b.Passages[:1] // drop the dyad passage
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
