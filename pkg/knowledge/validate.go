package knowledge

import (
	"fmt"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
)

// Validate checks the structural invariants of the base. It is called by
// Default and LoadFile; `arcana kb lint` exposes it directly.
func (b *Base) Validate() error {
	if err := b.validateTriads(); err != nil {
		return err
	}
	if err := b.validateDyads(); err != nil {
		return err
	}
	if err := b.validateJourney(); err != nil {
		return err
	}
	if err := b.validateProgressions(); err != nil {
		return err
	}
	if err := b.validateDecks(); err != nil {
		return err
	}
	if err := b.validateLineages(); err != nil {
		return err
	}
	return b.validatePassages()
}

func (b *Base) validateTriads() error {
	seen := make(map[string]bool, len(b.Triads))
	for _, t := range b.Triads {
		if t.ID == "" {
			return fmt.Errorf("%w: triad with empty id", ErrTriadShape)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: triad id %q", ErrDuplicateEntry, t.ID)
		}
		seen[t.ID] = true
		if len(t.Cards) != 3 || len(t.Names) != 3 {
			return fmt.Errorf("%w: triad %q needs 3 cards and 3 names", ErrTriadShape, t.ID)
		}
		if err := validateMajorNumbers(t.Cards); err != nil {
			return fmt.Errorf("%w: triad %q: %v", ErrTriadShape, t.ID, err)
		}
		if t.Theme == "" || t.Narrative == "" {
			return fmt.Errorf("%w: triad %q needs theme and narrative", ErrTriadShape, t.ID)
		}
		// Every partial key must be derivable from a pair of this
		// triad's own card names.
		valid := map[string]bool{
			PairKey(t.Names[0], t.Names[1]): true,
			PairKey(t.Names[0], t.Names[2]): true,
			PairKey(t.Names[1], t.Names[2]): true,
		}
		for key := range t.PartialNarratives {
			if !valid[key] {
				return fmt.Errorf("%w: triad %q partial key %q matches no name pair", ErrTriadShape, t.ID, key)
			}
		}
	}
	return nil
}

func (b *Base) validateDyads() error {
	seen := make(map[string]bool, len(b.Dyads))
	for _, d := range b.Dyads {
		if len(d.Cards) != 2 || len(d.Names) != 2 {
			return fmt.Errorf("%w: dyad %v needs 2 cards and 2 names", ErrDyadShape, d.Cards)
		}
		if err := validateMajorNumbers(d.Cards); err != nil {
			return fmt.Errorf("%w: dyad %v: %v", ErrDyadShape, d.Cards, err)
		}
		key := d.PairKey()
		if seen[key] {
			return fmt.Errorf("%w: dyad %q", ErrDuplicateEntry, key)
		}
		seen[key] = true
		switch d.Significance {
		case SignificanceHigh, SignificanceMediumHigh, SignificanceMedium:
		default:
			return fmt.Errorf("%w: dyad %q significance %q", ErrDyadShape, key, d.Significance)
		}
		if d.Theme == "" || d.Narrative == "" {
			return fmt.Errorf("%w: dyad %q needs theme and narrative", ErrDyadShape, key)
		}
	}
	return nil
}

func (b *Base) validateJourney() error {
	if len(b.Journey) != 3 {
		return fmt.Errorf("%w: want 3 stages, have %d", ErrJourneyShape, len(b.Journey))
	}
	want := map[string]bool{JourneyDeparture: false, JourneyInitiation: false, JourneyReturn: false}
	for _, s := range b.Journey {
		done, known := want[s.Key]
		if !known {
			return fmt.Errorf("%w: unknown stage key %q", ErrJourneyShape, s.Key)
		}
		if done {
			return fmt.Errorf("%w: journey stage %q", ErrDuplicateEntry, s.Key)
		}
		want[s.Key] = true
		if s.Theme == "" || s.Narrative == "" {
			return fmt.Errorf("%w: stage %q needs theme and narrative", ErrJourneyShape, s.Key)
		}
	}
	return nil
}

func (b *Base) validateProgressions() error {
	seen := make(map[string]bool, len(b.Progressions))
	for _, p := range b.Progressions {
		if _, ok := cards.ResolveSuit(p.Suit); !ok || seen[p.Suit] {
			return fmt.Errorf("%w: progression suit %q", ErrStageShape, p.Suit)
		}
		seen[p.Suit] = true

		wantStage := map[string]bool{StageBeginning: false, StageChallenge: false, StageMastery: false}
		covered := make(map[int]bool, 10)
		for _, s := range p.Stages {
			done, known := wantStage[s.Key]
			if !known || done {
				return fmt.Errorf("%w: suit %q stage %q", ErrStageShape, p.Suit, s.Key)
			}
			wantStage[s.Key] = true
			if s.Theme == "" || s.Narrative == "" {
				return fmt.Errorf("%w: suit %q stage %q needs theme and narrative", ErrStageShape, p.Suit, s.Key)
			}
			for _, r := range s.Ranks {
				if r < cards.MinPipRank || r > cards.MaxPipRank || covered[r] {
					return fmt.Errorf("%w: suit %q stage %q rank %d", ErrStageShape, p.Suit, s.Key, r)
				}
				covered[r] = true
			}
		}
		for _, key := range []string{StageBeginning, StageChallenge, StageMastery} {
			if !wantStage[key] {
				return fmt.Errorf("%w: suit %q missing stage %q", ErrStageShape, p.Suit, key)
			}
		}
		// The three rank sets must partition 1-10.
		if len(covered) != cards.MaxPipRank {
			return fmt.Errorf("%w: suit %q rank sets do not cover 1-10", ErrStageShape, p.Suit)
		}
	}
	for _, suit := range cards.CanonicalSuits {
		if !seen[string(suit)] {
			return fmt.Errorf("%w: missing progression for suit %q", ErrStageShape, suit)
		}
	}
	return nil
}

func (b *Base) validateDecks() error {
	keys := make(map[string]bool, len(b.Decks))
	for _, d := range b.Decks {
		if d.Key == "" {
			return fmt.Errorf("%w: deck with empty key", ErrDeckShape)
		}
		if keys[d.Key] {
			return fmt.Errorf("%w: deck key %q", ErrDuplicateEntry, d.Key)
		}
		keys[d.Key] = true
		for _, a := range d.Aliases {
			if keys[a] {
				return fmt.Errorf("%w: deck alias %q", ErrDuplicateEntry, a)
			}
			keys[a] = true
		}
		for _, m := range d.Majors {
			if m.Number < 0 || m.Number > cards.MaxMajorNumber || m.Title == "" {
				return fmt.Errorf("%w: deck %q major %d", ErrDeckShape, d.Key, m.Number)
			}
		}
		for _, s := range d.Suits {
			if _, ok := cards.ResolveSuit(s.Suit); !ok || s.Title == "" {
				return fmt.Errorf("%w: deck %q suit %q", ErrDeckShape, d.Key, s.Suit)
			}
		}
		epithets := make(map[string]bool, len(d.Epithets))
		for _, e := range d.Epithets {
			if e.Card == "" || e.Title == "" {
				return fmt.Errorf("%w: deck %q epithet %q", ErrDeckShape, d.Key, e.Card)
			}
			if epithets[e.Card] {
				return fmt.Errorf("%w: deck %q epithet %q", ErrDuplicateEntry, d.Key, e.Card)
			}
			epithets[e.Card] = true
		}
		ranks := make(map[int]bool, len(d.Numerology))
		for _, n := range d.Numerology {
			if n.Rank < cards.MinPipRank || n.Rank > cards.MaxPipRank || ranks[n.Rank] {
				return fmt.Errorf("%w: deck %q numerology rank %d", ErrDeckShape, d.Key, n.Rank)
			}
			ranks[n.Rank] = true
		}
	}
	if !keys[DefaultDeck] {
		return fmt.Errorf("%w: default deck %q not present", ErrDeckShape, DefaultDeck)
	}
	return nil
}

func (b *Base) validateLineages() error {
	deckKeys := make(map[string]bool, len(b.Decks))
	for _, d := range b.Decks {
		deckKeys[d.Key] = true
	}
	seen := make(map[string]bool, len(b.Lineages))
	for _, l := range b.Lineages {
		if _, ok := cards.ResolveSuit(l.Suit); !ok || seen[l.Suit] {
			return fmt.Errorf("%w: lineage suit %q", ErrLineageShape, l.Suit)
		}
		seen[l.Suit] = true
		for _, n := range l.DeckNotes {
			if !deckKeys[n.Deck] {
				return fmt.Errorf("%w: lineage %q deck note for unknown deck %q", ErrLineageShape, l.Suit, n.Deck)
			}
			if n.Note == "" {
				return fmt.Errorf("%w: lineage %q empty note for deck %q", ErrLineageShape, l.Suit, n.Deck)
			}
		}
	}
	for _, suit := range cards.CanonicalSuits {
		if !seen[string(suit)] {
			return fmt.Errorf("%w: missing lineage for suit %q", ErrLineageShape, suit)
		}
	}
	return nil
}

// validatePassages enforces full-coverage consistency: every triad id and
// every high or medium-high dyad pair key has a passage, and every passage
// key is owned by a triad, dyad, journey stage, or suit-stage.
func (b *Base) validatePassages() error {
	passages := make(map[string]bool, len(b.Passages))
	for _, p := range b.Passages {
		if p.Key == "" || p.Text == "" {
			return fmt.Errorf("%w: passage %q needs key and text", ErrOrphanPassage, p.Key)
		}
		if passages[p.Key] {
			return fmt.Errorf("%w: passage %q", ErrDuplicateEntry, p.Key)
		}
		passages[p.Key] = true
	}

	owners := make(map[string]bool)
	for _, t := range b.Triads {
		owners[t.ID] = true
		if !passages[t.ID] {
			return fmt.Errorf("%w: triad %q", ErrMissingPassage, t.ID)
		}
	}
	for _, d := range b.Dyads {
		key := d.PairKey()
		owners[key] = true
		if d.Significance == SignificanceHigh || d.Significance == SignificanceMediumHigh {
			if !passages[key] {
				return fmt.Errorf("%w: dyad %q", ErrMissingPassage, key)
			}
		}
	}
	for _, s := range b.Journey {
		owners[s.Key] = true
	}
	for _, p := range b.Progressions {
		for _, s := range p.Stages {
			owners[SuitStageKey(p.Suit, s.Key)] = true
		}
	}
	for key := range passages {
		if !owners[key] {
			return fmt.Errorf("%w: %q", ErrOrphanPassage, key)
		}
	}
	return nil
}

func validateMajorNumbers(numbers []int) error {
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 0 || n > cards.MaxMajorNumber {
			return fmt.Errorf("major number %d out of range", n)
		}
		if seen[n] {
			return fmt.Errorf("major number %d repeated", n)
		}
		seen[n] = true
	}
	return nil
}
