package knowledge

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
)

// Journey stage keys. Majors 0-7 belong to departure, 8-14 to initiation,
// 15-21 to return.
const (
	JourneyDeparture  = "departure"
	JourneyInitiation = "initiation"
	JourneyReturn     = "return"
)

// Suit progression stage keys.
const (
	StageBeginning = "beginning"
	StageChallenge = "challenge"
	StageMastery   = "mastery"
)

// Dyad significance levels as authored in the base.
const (
	SignificanceHigh       = "high"
	SignificanceMediumHigh = "medium-high"
	SignificanceMedium     = "medium"
)

// Deck style keys shipped with the embedded base.
const (
	DeckRWS       = "rws-1909"
	DeckThoth     = "thoth-a1"
	DeckMarseille = "marseille"

	DefaultDeck = DeckRWS
)

// DyadSignificanceRank orders dyad significance for sorting. Higher is
// more significant; unrecognized values rank lowest.
func DyadSignificanceRank(s string) int {
	switch s {
	case SignificanceHigh:
		return 3
	case SignificanceMediumHigh:
		return 2
	case SignificanceMedium:
		return 1
	default:
		return 0
	}
}

// Triad is a three-card Major Arcana narrative arc. PartialNarratives is
// keyed by the pair key of the two matched card names (see PairKey); a
// missing pair falls back to Narrative.
type Triad struct {
	ID                string            `koanf:"id" yaml:"id"`
	Cards             []int             `koanf:"cards" yaml:"cards,omitempty"`
	Names             []string          `koanf:"names" yaml:"names,omitempty"`
	Theme             string            `koanf:"theme" yaml:"theme"`
	Narrative         string            `koanf:"narrative" yaml:"narrative"`
	PartialNarratives map[string]string `koanf:"partial_narratives" yaml:"partial_narratives,omitempty"`
}

// Dyad is a two-card Major Arcana synergy.
type Dyad struct {
	Cards        []int    `koanf:"cards" yaml:"cards,omitempty"`
	Names        []string `koanf:"names" yaml:"names,omitempty"`
	Theme        string   `koanf:"theme" yaml:"theme"`
	Category     string   `koanf:"category" yaml:"category"`
	Narrative    string   `koanf:"narrative" yaml:"narrative"`
	Significance string   `koanf:"significance" yaml:"significance"`
}

// PairKey returns the dyad's passage key.
func (d Dyad) PairKey() string {
	if len(d.Names) != 2 {
		return ""
	}
	return PairKey(d.Names[0], d.Names[1])
}

// JourneyStage describes one of the three Fool's Journey life stages.
type JourneyStage struct {
	Key       string `koanf:"key" yaml:"key"`
	Name      string `koanf:"name" yaml:"name"`
	Theme     string `koanf:"theme" yaml:"theme"`
	Narrative string `koanf:"narrative" yaml:"narrative"`
}

// ProgressionStage is one developmental stage within a suit, owning a
// fixed set of pip rank values.
type ProgressionStage struct {
	Key       string `koanf:"key" yaml:"key"`
	Ranks     []int  `koanf:"ranks" yaml:"ranks,omitempty"`
	Theme     string `koanf:"theme" yaml:"theme"`
	Narrative string `koanf:"narrative" yaml:"narrative"`
}

// SuitProgression holds the three developmental stages of one suit.
type SuitProgression struct {
	Suit   string             `koanf:"suit" yaml:"suit"`
	Stages []ProgressionStage `koanf:"stages" yaml:"stages,omitempty"`
}

// Stage returns the stage with the given key.
func (p SuitProgression) Stage(key string) (ProgressionStage, bool) {
	for _, s := range p.Stages {
		if s.Key == key {
			return s, true
		}
	}
	return ProgressionStage{}, false
}

// StageForRank returns the stage whose rank set contains value.
func (p SuitProgression) StageForRank(value int) (ProgressionStage, bool) {
	for _, s := range p.Stages {
		for _, r := range s.Ranks {
			if r == value {
				return s, true
			}
		}
	}
	return ProgressionStage{}, false
}

// DeckNote is a deck-specific aside attached to a court lineage.
type DeckNote struct {
	Deck string `koanf:"deck" yaml:"deck"`
	Note string `koanf:"note" yaml:"note"`
}

// CourtLineage holds per-suit lineage narrative templates. Duo covers
// two-court alliances, Trio covers councils of three or more.
type CourtLineage struct {
	Suit      string     `koanf:"suit" yaml:"suit"`
	Duo       string     `koanf:"duo" yaml:"duo"`
	Trio      string     `koanf:"trio" yaml:"trio"`
	DeckNotes []DeckNote `koanf:"deck_notes" yaml:"deck_notes,omitempty"`
}

// NoteFor returns the deck-specific note for the given deck key.
func (l CourtLineage) NoteFor(deckKey string) (string, bool) {
	for _, n := range l.DeckNotes {
		if n.Deck == deckKey {
			return n.Note, true
		}
	}
	return "", false
}

// MajorTitle renames one Major Arcana card in a deck style.
type MajorTitle struct {
	Number int    `koanf:"number" yaml:"number"`
	Title  string `koanf:"title" yaml:"title"`
}

// SuitTitle renames one suit in a deck style.
type SuitTitle struct {
	Suit  string `koanf:"suit" yaml:"suit"`
	Title string `koanf:"title" yaml:"title"`
}

// CourtTitle renames one court rank in a deck style, keyed by the default
// label (Page, Knight, Queen, King).
type CourtTitle struct {
	Rank  string `koanf:"rank" yaml:"rank"`
	Title string `koanf:"title" yaml:"title"`
}

// Epithet is a deck-specific minor card annotation, keyed by the card's
// default label (for example "Two of Wands").
type Epithet struct {
	Card        string `koanf:"card" yaml:"card"`
	Title       string `koanf:"title" yaml:"title"`
	Astrology   string `koanf:"astrology" yaml:"astrology"`
	Description string `koanf:"description" yaml:"description"`
}

// NumerologyTheme carries a deck's pip-rank symbolism.
type NumerologyTheme struct {
	Rank        int    `koanf:"rank" yaml:"rank"`
	Keyword     string `koanf:"keyword" yaml:"keyword"`
	Description string `koanf:"description" yaml:"description"`
	Geometry    string `koanf:"geometry" yaml:"geometry"`
}

// DeckStyle describes one deck: its registry key, tolerated aliases, title
// substitutions, and optional symbolic overlays.
type DeckStyle struct {
	Key        string            `koanf:"key" yaml:"key"`
	Name       string            `koanf:"name" yaml:"name"`
	Aliases    []string          `koanf:"aliases" yaml:"aliases,omitempty"`
	Majors     []MajorTitle      `koanf:"majors" yaml:"majors,omitempty"`
	Suits      []SuitTitle       `koanf:"suits" yaml:"suits,omitempty"`
	Courts     []CourtTitle      `koanf:"courts" yaml:"courts,omitempty"`
	Epithets   []Epithet         `koanf:"epithets" yaml:"epithets,omitempty"`
	Numerology []NumerologyTheme `koanf:"numerology" yaml:"numerology,omitempty"`
}

// Naming builds the title-substitution view used for deck-aware display
// names. Returns nil when the style renames nothing.
func (d *DeckStyle) Naming() *cards.Naming {
	if d == nil {
		return nil
	}
	if len(d.Majors) == 0 && len(d.Suits) == 0 && len(d.Courts) == 0 {
		return nil
	}
	n := &cards.Naming{
		MajorTitles: make(map[int]string, len(d.Majors)),
		SuitNames:   make(map[cards.Suit]string, len(d.Suits)),
		CourtRanks:  make(map[string]string, len(d.Courts)),
	}
	for _, m := range d.Majors {
		n.MajorTitles[m.Number] = m.Title
	}
	for _, s := range d.Suits {
		if suit, ok := cards.ResolveSuit(s.Suit); ok {
			n.SuitNames[suit] = s.Title
		}
	}
	for _, c := range d.Courts {
		n.CourtRanks[c.Rank] = c.Title
	}
	return n
}

// EpithetFor returns the epithet entry for a card's default label.
func (d *DeckStyle) EpithetFor(label string) (Epithet, bool) {
	if d == nil {
		return Epithet{}, false
	}
	for _, e := range d.Epithets {
		if strings.EqualFold(e.Card, label) {
			return e, true
		}
	}
	return Epithet{}, false
}

// NumerologyFor returns the numerology theme for a pip rank value.
func (d *DeckStyle) NumerologyFor(rank int) (NumerologyTheme, bool) {
	if d == nil {
		return NumerologyTheme{}, false
	}
	for _, n := range d.Numerology {
		if n.Rank == rank {
			return n, true
		}
	}
	return NumerologyTheme{}, false
}

// Passage is one long-form display passage.
type Passage struct {
	Key  string `koanf:"key" yaml:"key"`
	Text string `koanf:"text" yaml:"text"`
}

// Base is the complete knowledge base. Immutable after load.
type Base struct {
	Triads       []Triad           `koanf:"triads" yaml:"triads,omitempty"`
	Dyads        []Dyad            `koanf:"dyads" yaml:"dyads,omitempty"`
	Journey      []JourneyStage    `koanf:"journey" yaml:"journey,omitempty"`
	Progressions []SuitProgression `koanf:"progressions" yaml:"progressions,omitempty"`
	Lineages     []CourtLineage    `koanf:"lineages" yaml:"lineages,omitempty"`
	Decks        []DeckStyle       `koanf:"decks" yaml:"decks,omitempty"`
	Passages     []Passage         `koanf:"passages" yaml:"passages,omitempty"`
}

// JourneyStage returns the journey stage for the given key.
func (b *Base) JourneyStage(key string) (JourneyStage, bool) {
	for _, s := range b.Journey {
		if s.Key == key {
			return s, true
		}
	}
	return JourneyStage{}, false
}

// Progression returns the suit progression for the given canonical suit.
func (b *Base) Progression(suit cards.Suit) (SuitProgression, bool) {
	for _, p := range b.Progressions {
		if p.Suit == string(suit) {
			return p, true
		}
	}
	return SuitProgression{}, false
}

// Lineage returns the court lineage templates for the given canonical suit.
func (b *Base) Lineage(suit cards.Suit) (CourtLineage, bool) {
	for _, l := range b.Lineages {
		if l.Suit == string(suit) {
			return l, true
		}
	}
	return CourtLineage{}, false
}

// Deck resolves a deck style by key. The empty key resolves to the default
// style; lookup tolerates the registered aliases ("rws", "thoth") and is
// case-insensitive.
func (b *Base) Deck(key string) (*DeckStyle, error) {
	norm := strings.ToLower(strings.TrimSpace(key))
	if norm == "" {
		norm = DefaultDeck
	}
	for i := range b.Decks {
		d := &b.Decks[i]
		if strings.ToLower(d.Key) == norm {
			return d, nil
		}
		for _, a := range d.Aliases {
			if strings.ToLower(a) == norm {
				return d, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDeck, key)
}

// Passage returns the long-form passage text for a key.
func (b *Base) Passage(key string) (string, bool) {
	for _, p := range b.Passages {
		if p.Key == key {
			return p.Text, true
		}
	}
	return "", false
}
