// Package cards normalizes heterogeneous tarot card records into a canonical
// shape the pattern detectors can rely on.
//
// Spread input arrives as loosely shaped records: Major Arcana cards carry a
// number (0-21) and usually a name, Minor Arcana cards carry some combination
// of suit, textual rank, numeric rank value, and name. Different deck
// traditions spell all of these differently ("Bâtons", "Deniers", "Princess
// of Disks"). Normalize resolves every record to a Kind (major, pip, court,
// unknown), a canonical Suit, and a rank value, excluding what it cannot
// resolve instead of failing.
//
// Resolution is purely lexical: suit aliases are matched after stripping
// diacritics and non-letters, textual ranks ("Ace".."Ten", court labels in
// English, French, and Thoth conventions) map to fixed values, and minor-card
// names ("Three of Cups") are token-scanned as a last resort.
//
// Display names are deck-aware: a Naming table substitutes major titles,
// suit names, and court labels for a given deck style, annotating renamed
// cards with their default label for traceability ("Adjustment (Strength)").
//
// Everything in this package is a pure function over its inputs; nothing is
// cached between calls and nothing panics on malformed records.
package cards
