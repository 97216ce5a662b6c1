package cards

// Kind classifies a normalized card.
type Kind int

const (
	// KindUnknown marks records no detector can use.
	KindUnknown Kind = iota
	// KindMajor is a Major Arcana card (number 0-21).
	KindMajor
	// KindPip is a suited card of rank 1-10.
	KindPip
	// KindCourt is a suited card of rank 11-14.
	KindCourt
)

// String returns the kind name for logs and debug output.
func (k Kind) String() string {
	switch k {
	case KindMajor:
		return "major"
	case KindPip:
		return "pip"
	case KindCourt:
		return "court"
	default:
		return "unknown"
	}
}

// NormalizedCard is the canonical view of one raw record. It is recomputed
// on every detection call and never cached.
type NormalizedCard struct {
	// Card is the raw input record.
	Card Card

	// Kind is the resolved classification.
	Kind Kind

	// Number is the Major Arcana number. Meaningful only for KindMajor.
	Number int

	// Suit is the canonical suit, or "" when unresolvable.
	Suit Suit

	// RankValue is 1-14, or 0 when unresolvable.
	RankValue int
}

// IsPip reports whether the card is a pip with a resolved suit, the shape
// the suit-progression detector needs.
func (n NormalizedCard) IsPip() bool {
	return n.Kind == KindPip && n.Suit != ""
}

// IsCourt reports whether the card is a court with a resolved suit.
func (n NormalizedCard) IsCourt() bool {
	return n.Kind == KindCourt && n.Suit != ""
}

// Normalize resolves one raw record into its canonical view. It never
// panics; anything unresolvable is left at its zero value and the record
// degrades to KindUnknown.
func Normalize(c Card) NormalizedCard {
	if c.IsMajor() {
		return NormalizedCard{Card: c, Kind: KindMajor, Number: *c.Number}
	}

	n := NormalizedCard{Card: c}

	// Suit: explicit field first, then the name.
	if s, ok := ResolveSuit(c.Suit); ok {
		n.Suit = s
	} else if s, ok := suitFromName(c.Name); ok {
		n.Suit = s
	}

	// Rank value: explicit numeric field wins, then textual rank, then name.
	switch {
	case c.RankValue >= MinPipRank && c.RankValue <= MaxCourtRank:
		n.RankValue = c.RankValue
	default:
		if v, ok := rankValueFromText(c.Rank); ok {
			n.RankValue = v
		} else if v, ok := rankValueFromName(c.Name); ok {
			n.RankValue = v
		}
	}

	switch {
	case n.RankValue >= MinCourtRank && n.RankValue <= MaxCourtRank:
		n.Kind = KindCourt
	case isCourtLabel(c.Rank) || nameHasCourtLabel(c.Name):
		// Court detected by label alone; the seat stays unranked.
		n.Kind = KindCourt
	case n.RankValue >= MinPipRank && n.RankValue <= MaxPipRank:
		n.Kind = KindPip
	}

	return n
}

// NormalizeAll resolves a whole spread, preserving order.
func NormalizeAll(spread []Card) []NormalizedCard {
	if len(spread) == 0 {
		return nil
	}
	out := make([]NormalizedCard, len(spread))
	for i, c := range spread {
		out[i] = Normalize(c)
	}
	return out
}

// nameHasCourtLabel scans a card name for a court token.
func nameHasCourtLabel(name string) bool {
	for _, tok := range nameTokens(name) {
		if isCourtLabel(tok) {
			return true
		}
	}
	return false
}
