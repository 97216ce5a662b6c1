package cards

import "encoding/json"

// Card is one raw card record from a spread. Fields may be partially absent;
// detectors exclude cards they cannot resolve rather than erroring.
//
// Major Arcana records carry Number (0-21) and usually Name. Minor Arcana
// records carry some combination of Suit, Rank, RankValue, and Name.
type Card struct {
	// Number is the Major Arcana number (0-21). Nil for Minor Arcana or when
	// absent; a pointer so that The Fool (0) is distinguishable from unset.
	Number *int `json:"number,omitempty"`

	// Name is the display or lookup name ("Death", "Three of Cups",
	// "Prince of Disks"). JSON input may supply it as "name" or "card".
	Name string `json:"name,omitempty"`

	// Suit is the raw suit string in any tradition's spelling.
	Suit string `json:"suit,omitempty"`

	// Rank is the textual rank ("Ace".."Ten", "Page", "Cavalier", ...).
	Rank string `json:"rank,omitempty"`

	// RankValue is the numeric rank, 1-14 (11-14 are courts). Zero when absent.
	RankValue int `json:"rankValue,omitempty"`
}

// UnmarshalJSON accepts "card" as an alias for "name", matching the wire
// shape produced by the reading front end.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw struct {
		Number    *int   `json:"number"`
		Name      string `json:"name"`
		Card      string `json:"card"`
		Suit      string `json:"suit"`
		Rank      string `json:"rank"`
		RankValue int    `json:"rankValue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Number = raw.Number
	c.Name = raw.Name
	if c.Name == "" {
		c.Name = raw.Card
	}
	c.Suit = raw.Suit
	c.Rank = raw.Rank
	c.RankValue = raw.RankValue
	return nil
}

// Major builds a Major Arcana card record.
func Major(number int, name string) Card {
	n := number
	return Card{Number: &n, Name: name}
}

// Minor builds a Minor Arcana card record.
func Minor(suit Suit, rank string, rankValue int) Card {
	return Card{Suit: string(suit), Rank: rank, RankValue: rankValue}
}

// IsMajor reports whether the record carries a valid Major Arcana number.
func (c Card) IsMajor() bool {
	return c.Number != nil && *c.Number >= 0 && *c.Number <= MaxMajorNumber
}

// MaxMajorNumber is the highest Major Arcana number (The World).
const MaxMajorNumber = 21
