package narrative

// Entry types, named for the rule that produced the entry.
const (
	TypeTriad        = "triad"
	TypePartialTriad = "partial-triad"
	TypeJourney      = "journey"
	TypeProgression  = "suit-progression"
	TypeCouncil      = "court-council"
	TypeAlliance     = "court-alliance"
	TypeDyad         = "dyad"
	TypeSuitEpithets = "suit-epithets"
	TypeEpithet      = "epithet"
	TypeNumerology   = "numerology"
)

// Entry is one ranked narrative highlight. Text leads with the bolded
// theme so the synthesis stage can splice it into prose directly.
// Cards holds Major Arcana numbers for major-based entries and rank
// values for minor-based ones.
type Entry struct {
	Priority     int    `json:"priority"`
	Type         string `json:"type"`
	Text         string `json:"text"`
	Cards        []int  `json:"cards"`
	Suit         string `json:"suit,omitempty"`
	Stage        string `json:"stage,omitempty"`
	Significance string `json:"significance,omitempty"`
	Theme        string `json:"theme,omitempty"`
	TriadID      string `json:"triadId,omitempty"`
	Completeness int    `json:"completeness,omitempty"`
	Astrology    string `json:"astrology,omitempty"`
}
