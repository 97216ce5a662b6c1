// Package knowledge provides the curated archetype knowledge base the
// pattern engine reads from: narrative triads, two-card dyads, Fool's
// Journey stages, per-suit developmental progressions, court lineage
// templates, deck style registries, and the long-form passage index.
//
// The base is static and read-only. It is loaded once at process start,
// either from the YAML files embedded in this package (Default) or from a
// substitute YAML file with the same shape (LoadFile). Both paths run the
// full structural validation before returning, so a *Base in hand is
// always internally consistent.
//
// # Shape
//
// Entries reference Major Arcana cards by number (0-21) and minor cards by
// canonical suit and rank value. Lookup keys derived from card names use
// PairKey, which normalizes and sorts the two names so that authoring
// order never matters.
//
// # Passages
//
// Passages hold long-form text keyed by triad id, dyad pair key, journey
// stage, or suit-stage key. The engine never reads them at runtime; they
// exist for the downstream display layer, and Validate enforces full
// coverage between them and the entries that can emit their keys.
//
// # Usage
//
//	base, err := knowledge.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	deck, err := base.Deck("thoth")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(deck.Name)
package knowledge
