package knowledge

import (
	"sort"
	"strings"
)

// PairKey builds the canonical lookup key for a two-card combination:
// both names lowercased, a leading "the " dropped, inner spaces dashed,
// then sorted and joined with "+".
//
//	PairKey("Death", "The Star")            = "death+star"
//	PairKey("The Moon", "The High Priestess") = "high-priestess+moon"
func PairKey(a, b string) string {
	parts := []string{nameToken(a), nameToken(b)}
	sort.Strings(parts)
	return strings.Join(parts, "+")
}

// SuitStageKey builds the passage key for a suit developmental stage,
// for example "wands-beginning".
func SuitStageKey(suit, stage string) string {
	return strings.ToLower(suit) + "-" + stage
}

func nameToken(name string) string {
	t := strings.ToLower(strings.TrimSpace(name))
	t = strings.TrimPrefix(t, "the ")
	return strings.ReplaceAll(t, " ", "-")
}
