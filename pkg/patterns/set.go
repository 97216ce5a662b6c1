package patterns

// Journey significance levels.
const (
	SignificanceStrong   = "strong"
	SignificanceModerate = "moderate"
	SignificanceMinimal  = "minimal"
)

// Triad match strengths.
const (
	StrengthPrimary    = "primary"
	StrengthSupporting = "supporting"
)

// Suit progression significance levels.
const (
	StrongProgression   = "strong-progression"
	EmergingProgression = "emerging-progression"
)

// Court lineage kinds.
const (
	LineageCouncil  = "council"
	LineageAlliance = "alliance"
)

// Set aggregates one detection pass. Each field is populated only when
// its detector found at least one match.
type Set struct {
	FoolsJourney     *JourneyPattern     `json:"foolsJourney,omitempty"`
	Triads           []TriadMatch        `json:"triads,omitempty"`
	Dyads            []DyadMatch         `json:"dyads,omitempty"`
	SuitProgressions []ProgressionMatch  `json:"suitProgressions,omitempty"`
	CourtLineages    []LineageMatch      `json:"courtLineages,omitempty"`
	ThothEpithets    *EpithetAnnotations `json:"thothEpithets,omitempty"`
	MarseillePip     *PipNumerology      `json:"marseillePip,omitempty"`
}

// Empty reports whether no detector contributed anything.
func (s *Set) Empty() bool {
	if s == nil {
		return true
	}
	return s.FoolsJourney == nil &&
		len(s.Triads) == 0 &&
		len(s.Dyads) == 0 &&
		len(s.SuitProgressions) == 0 &&
		len(s.CourtLineages) == 0 &&
		s.ThothEpithets == nil &&
		s.MarseillePip == nil
}

// JourneyPattern is the dominant Fool's Journey stage of a spread.
type JourneyPattern struct {
	Stage        string   `json:"stage"`
	StageName    string   `json:"stageName"`
	Cards        []int    `json:"cards"`
	CardNames    []string `json:"cardNames"`
	CardCount    int      `json:"cardCount"`
	TotalMajors  int      `json:"totalMajors"`
	Significance string   `json:"significance"`
	Theme        string   `json:"theme"`
	Narrative    string   `json:"narrative"`
}

// TriadMatch is a complete or partial three-card arc.
type TriadMatch struct {
	ID           string   `json:"id"`
	Theme        string   `json:"theme"`
	Cards        []int    `json:"cards"`
	CardNames    []string `json:"cardNames"`
	MissingCards []int    `json:"missingCards,omitempty"`
	Complete     bool     `json:"complete"`
	Completeness int      `json:"completeness"`
	Strength     string   `json:"strength"`
	Narrative    string   `json:"narrative"`
}

// DyadMatch is a two-card synergy whose both members are present.
type DyadMatch struct {
	Cards        []int    `json:"cards"`
	CardNames    []string `json:"cardNames"`
	Theme        string   `json:"theme"`
	Category     string   `json:"category"`
	Narrative    string   `json:"narrative"`
	Significance string   `json:"significance"`
}

// ProgressionMatch is a dominant developmental stage within one suit's
// pip cards. Distribution carries the per-stage counts for the whole
// suit, including stages with zero cards.
type ProgressionMatch struct {
	Suit         string         `json:"suit"`
	Stage        string         `json:"stage"`
	StageTheme   string         `json:"stageTheme"`
	Narrative    string         `json:"narrative"`
	Cards        []int          `json:"cards"`
	CardNames    []string       `json:"cardNames"`
	CardCount    int            `json:"cardCount"`
	Distribution map[string]int `json:"distribution"`
	Significance string         `json:"significance"`
}

// LineageMatch is a same-suit court gathering.
type LineageMatch struct {
	Suit      string   `json:"suit"`
	Kind      string   `json:"kind"`
	Cards     []int    `json:"cards"`
	CardNames []string `json:"cardNames"`
	Narrative string   `json:"narrative"`
}

// EpithetAnnotations is the Thoth overlay: per-card epithets plus
// suit-level narratives synthesized where two or more annotated cards
// share a suit.
type EpithetAnnotations struct {
	Cards          []CardEpithet   `json:"cards"`
	SuitNarratives []SuitNarrative `json:"suitNarratives,omitempty"`
}

// CardEpithet is one annotated minor card.
type CardEpithet struct {
	Card        string `json:"card"`
	StyledCard  string `json:"styledCard"`
	Suit        string `json:"suit"`
	Rank        int    `json:"rank"`
	Title       string `json:"title"`
	Astrology   string `json:"astrology,omitempty"`
	Description string `json:"description"`
}

// SuitNarrative is an arrow-joined epithet sequence for one suit.
type SuitNarrative struct {
	Suit      string `json:"suit"`
	CardCount int    `json:"cardCount"`
	Narrative string `json:"narrative"`
}

// PipNumerology is the Marseille overlay: clusters of same-rank pips.
type PipNumerology struct {
	Clusters []PipCluster `json:"clusters"`
}

// PipCluster groups two or more pips of one rank across suits.
type PipCluster struct {
	Rank        int      `json:"rank"`
	Keyword     string   `json:"keyword"`
	Description string   `json:"description"`
	Geometry    string   `json:"geometry"`
	Cards       []string `json:"cards"`
	CardCount   int      `json:"cardCount"`
}
