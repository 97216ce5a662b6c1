package cards

import "fmt"

// defaultMajorNames are the default (RWS 1909) Major Arcana titles, indexed
// by card number.
var defaultMajorNames = [MaxMajorNumber + 1]string{
	"The Fool", "The Magician", "The High Priestess", "The Empress",
	"The Emperor", "The Hierophant", "The Lovers", "The Chariot",
	"Strength", "The Hermit", "Wheel of Fortune", "Justice",
	"The Hanged Man", "Death", "Temperance", "The Devil",
	"The Tower", "The Star", "The Moon", "The Sun",
	"Judgement", "The World",
}

// MajorName returns the default title for a Major Arcana number, or "" when
// the number is out of range.
func MajorName(number int) string {
	if number < 0 || number > MaxMajorNumber {
		return ""
	}
	return defaultMajorNames[number]
}

// Naming supplies deck-specific labels. Any nil map falls back to the
// default (RWS) labels. The zero value renders pure RWS names.
type Naming struct {
	// MajorTitles overrides Major Arcana titles by number.
	MajorTitles map[int]string
	// SuitNames overrides canonical suit display names.
	SuitNames map[Suit]string
	// CourtRanks overrides court labels, keyed by the default label
	// ("Page", "Knight", "Queen", "King").
	CourtRanks map[string]string
}

// DisplayName renders a deck-aware display name for a card. When the naming
// table renames the card, the default label follows in parentheses for
// traceability: "Adjustment (Strength)", "Prince of Disks (Knight of
// Pentacles)". A nil naming table renders plain default names.
func DisplayName(c Card, n *Naming) string {
	def := defaultName(c)
	if n == nil {
		return def
	}
	styled := styledName(c, n)
	if styled == "" || styled == def {
		return def
	}
	if def == "" {
		return styled
	}
	return fmt.Sprintf("%s (%s)", styled, def)
}

// defaultName renders the RWS name for a card, falling back to whatever the
// record itself carries when it cannot be resolved.
func defaultName(c Card) string {
	if c.IsMajor() {
		return defaultMajorNames[*c.Number]
	}
	norm := Normalize(c)
	if norm.Suit != "" && norm.RankValue != 0 {
		return fmt.Sprintf("%s of %s", defaultRankLabels[norm.RankValue], norm.Suit)
	}
	return c.Name
}

// styledName renders the deck-specific name, using default labels for any
// element the naming table does not override.
func styledName(c Card, n *Naming) string {
	if c.IsMajor() {
		if title, ok := n.MajorTitles[*c.Number]; ok && title != "" {
			return title
		}
		return defaultMajorNames[*c.Number]
	}

	norm := Normalize(c)
	if norm.Suit == "" || norm.RankValue == 0 {
		return c.Name
	}

	rank := defaultRankLabels[norm.RankValue]
	if norm.RankValue >= MinCourtRank {
		if label, ok := n.CourtRanks[rank]; ok && label != "" {
			rank = label
		}
	}
	suit := string(norm.Suit)
	if label, ok := n.SuitNames[norm.Suit]; ok && label != "" {
		suit = label
	}
	return fmt.Sprintf("%s of %s", rank, suit)
}
