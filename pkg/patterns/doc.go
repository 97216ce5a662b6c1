// Package patterns implements archetypal pattern detection over a tarot
// spread: Fool's Journey stage dominance, narrative triads, two-card
// dyads, per-suit developmental progressions, court lineages, and the
// deck-specific overlays (Thoth epithets, Marseille pip numerology).
//
// Detection is pure and synchronous. Every detector reads the immutable
// knowledge base and the normalized spread, and returns either its typed
// matches or nothing; malformed cards are excluded rather than reported.
// The Engine runs all seven detectors per invocation and isolates them
// from each other: a panicking detector is recovered, logged, counted,
// and contributes an empty result while its siblings complete normally.
//
// Context on Engine methods carries trace spans only; detection never
// blocks and is never cancelled mid-flight.
package patterns
