package reading

import (
	"errors"
	"time"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/narrative"
	"github.com/fyrsmithlabs/arcana/pkg/patterns"
)

var (
	// ErrEmptySpread indicates the request carried no cards.
	ErrEmptySpread = errors.New("spread cannot be empty")

	// ErrSpreadTooLarge indicates the spread exceeds the configured maximum.
	ErrSpreadTooLarge = errors.New("spread exceeds maximum size")
)

// Request describes one reading to perform.
type Request struct {
	// Cards is the drawn spread, in draw order.
	Cards []cards.Card `json:"cards"`

	// Deck selects the deck style. Empty means the service default.
	Deck string `json:"deck,omitempty"`

	// Limit caps the number of narrative entries returned.
	// Zero or negative means no extra cap beyond the prioritizer's own.
	Limit int `json:"limit,omitempty"`

	// IncludePatterns echoes the raw detected pattern set in the result.
	IncludePatterns bool `json:"includePatterns,omitempty"`
}

// Reading is the result of one performed reading.
type Reading struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	Deck      string            `json:"deck"`
	CardCount int               `json:"cardCount"`
	Entries   []narrative.Entry `json:"entries"`
	Patterns  *patterns.Set     `json:"patterns,omitempty"`
}
