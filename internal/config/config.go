// Package config provides configuration loading for arcana.
//
// Configuration is loaded from a YAML file with environment variable
// overrides (ARCANA_ prefix). Sections for logging and telemetry are
// owned by their packages; this package aggregates them.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/arcana/internal/logging"
	"github.com/fyrsmithlabs/arcana/internal/telemetry"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

// Config holds the complete arcana configuration.
type Config struct {
	Deck      DeckConfig       `koanf:"deck"`
	Knowledge KnowledgeConfig  `koanf:"knowledge"`
	Reading   ReadingConfig    `koanf:"reading"`
	Logging   logging.Config   `koanf:"logging"`
	Telemetry telemetry.Config `koanf:"telemetry"`
}

// DeckConfig selects the deck whose captions and overlays are used.
type DeckConfig struct {
	Style string `koanf:"style"`
}

// KnowledgeConfig controls the pattern knowledge base source.
type KnowledgeConfig struct {
	// Path overrides the embedded knowledge base with a YAML file.
	// Empty means use the embedded base.
	Path string `koanf:"path"`
}

// ReadingConfig holds reading service configuration.
type ReadingConfig struct {
	// MaxSpreadSize caps the number of cards accepted in one spread.
	MaxSpreadSize int `koanf:"max_spread_size"`
}

// NewDefaultConfig returns config with production-ready defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Deck: DeckConfig{
			Style: knowledge.DefaultDeck,
		},
		Reading: ReadingConfig{
			MaxSpreadSize: 78, // a full deck
		},
		Logging:   *logging.NewDefaultConfig(),
		Telemetry: *telemetry.NewDefaultConfig(),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Deck.Style == "" {
		return fmt.Errorf("deck.style cannot be empty")
	}

	if c.Reading.MaxSpreadSize < 1 {
		return fmt.Errorf("reading.max_spread_size must be positive, got %d", c.Reading.MaxSpreadSize)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}
