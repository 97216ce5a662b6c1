package cards

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Suit is one of the four canonical Minor Arcana suits.
type Suit string

const (
	Wands     Suit = "Wands"
	Cups      Suit = "Cups"
	Swords    Suit = "Swords"
	Pentacles Suit = "Pentacles"
)

// CanonicalSuits lists the four suits in their fixed iteration order.
// Detectors group by suit in this order so output is deterministic.
var CanonicalSuits = []Suit{Wands, Cups, Swords, Pentacles}

// suitAliases maps folded suit tokens to canonical suits. Covers RWS,
// Thoth, and Marseille spellings plus the common generic variants.
var suitAliases = map[string]Suit{
	"wands":  Wands,
	"wand":   Wands,
	"batons": Wands,
	"baton":  Wands,
	"staves": Wands,
	"staffs": Wands,
	"rods":   Wands,
	"rod":    Wands,

	"cups":     Cups,
	"cup":      Cups,
	"coupes":   Cups,
	"coupe":    Cups,
	"chalices": Cups,
	"chalice":  Cups,
	"goblets":  Cups,

	"swords": Swords,
	"sword":  Swords,
	"epees":  Swords,
	"epee":   Swords,
	"blades": Swords,

	"pentacles": Pentacles,
	"pentacle":  Pentacles,
	"deniers":   Pentacles,
	"denier":    Pentacles,
	"discs":     Pentacles,
	"disc":      Pentacles,
	"disks":     Pentacles,
	"disk":      Pentacles,
	"coins":     Pentacles,
	"coin":      Pentacles,
}

// foldTransformer strips combining marks so "Bâtons" and "Épées" fold to
// their plain-letter forms before alias lookup.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldToken lowercases a token and strips diacritics and non-letters,
// producing the key form used by the alias tables.
func FoldToken(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ResolveSuit maps a raw suit string to its canonical suit. It tries a
// direct canonical match first, then the folded alias table.
func ResolveSuit(raw string) (Suit, bool) {
	if raw == "" {
		return "", false
	}
	switch Suit(raw) {
	case Wands, Cups, Swords, Pentacles:
		return Suit(raw), true
	}
	if s, ok := suitAliases[FoldToken(raw)]; ok {
		return s, true
	}
	return "", false
}

// nameTokens splits a card name into foldable tokens. Apostrophes separate
// tokens so French contractions ("Cavalier d'Épées") expose their suit.
func nameTokens(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\'' || r == '’'
	})
}

// suitFromName scans a card name ("Three of Cups", "Valet de Bâtons") for an
// embedded suit token. Returns the first token that resolves.
func suitFromName(name string) (Suit, bool) {
	if name == "" {
		return "", false
	}
	for _, tok := range nameTokens(name) {
		if s, ok := suitAliases[FoldToken(tok)]; ok {
			return s, true
		}
	}
	return "", false
}
