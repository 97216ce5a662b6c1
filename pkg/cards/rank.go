package cards

// Rank value boundaries. Pips run 1-10; courts occupy 11-14.
const (
	MinPipRank   = 1
	MaxPipRank   = 10
	MinCourtRank = 11
	MaxCourtRank = 14
)

// pipRankNames maps folded textual pip ranks to values 1-10.
var pipRankNames = map[string]int{
	"ace":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

// courtRankNames maps folded court labels to values 11-14. English (RWS),
// Thoth, and Marseille French labels are all recognized. Where traditions
// reuse a label for different seats ("Knight" is 12 in RWS but the Thoth
// name for the King's seat), the RWS reading wins; explicit rank values
// take precedence over labels anyway.
var courtRankNames = map[string]int{
	"page":     11,
	"knave":    11,
	"valet":    11,
	"princess": 11,

	"knight":    12,
	"cavalier":  12,
	"chevalier": 12,
	"prince":    12,

	"queen": 13,
	"dame":  13,
	"reine": 13,
	"reyne": 13,

	"king": 14,
	"roi":  14,
	"roy":  14,
}

// defaultRankLabels renders rank values back to the default (RWS) labels.
var defaultRankLabels = map[int]string{
	1: "Ace", 2: "Two", 3: "Three", 4: "Four", 5: "Five",
	6: "Six", 7: "Seven", 8: "Eight", 9: "Nine", 10: "Ten",
	11: "Page", 12: "Knight", 13: "Queen", 14: "King",
}

// rankValueFromText resolves a textual rank to its value, pip or court.
func rankValueFromText(rank string) (int, bool) {
	tok := FoldToken(rank)
	if tok == "" {
		return 0, false
	}
	if v, ok := pipRankNames[tok]; ok {
		return v, true
	}
	if v, ok := courtRankNames[tok]; ok {
		return v, true
	}
	return 0, false
}

// rankValueFromName scans a card name for a leading rank token
// ("Three of Cups" -> 3, "Prince of Disks" -> 12).
func rankValueFromName(name string) (int, bool) {
	for _, tok := range nameTokens(name) {
		if v, ok := rankValueFromText(tok); ok {
			return v, true
		}
	}
	return 0, false
}

// isCourtLabel reports whether the token is a recognized court label.
func isCourtLabel(s string) bool {
	_, ok := courtRankNames[FoldToken(s)]
	return ok
}

// RankLabel returns the default label for a rank value, or "" when the
// value is outside 1-14.
func RankLabel(value int) string {
	return defaultRankLabels[value]
}
