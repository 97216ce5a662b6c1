package patterns

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

const instrumentationName = "github.com/fyrsmithlabs/arcana/pkg/patterns"

var tracer = otel.Tracer("arcana.patterns")

// ErrNilBase is returned when the engine is constructed without a
// knowledge base.
var ErrNilBase = errors.New("knowledge base is required")

// detector is one isolated detection pass writing its findings into the
// shared set.
type detector struct {
	name string
	run  func(e *Engine, deck *knowledge.DeckStyle, norm []cards.NormalizedCard, set *Set)
}

func defaultDetectors() []detector {
	return []detector{
		{"journey", func(e *Engine, d *knowledge.DeckStyle, norm []cards.NormalizedCard, s *Set) {
			s.FoolsJourney = DetectJourney(e.base, d, norm)
		}},
		{"triads", func(e *Engine, d *knowledge.DeckStyle, norm []cards.NormalizedCard, s *Set) {
			s.Triads = MatchTriads(e.base, d, norm)
		}},
		{"dyads", func(e *Engine, d *knowledge.DeckStyle, norm []cards.NormalizedCard, s *Set) {
			s.Dyads = MatchDyads(e.base, d, norm)
		}},
		{"progressions", func(e *Engine, d *knowledge.DeckStyle, norm []cards.NormalizedCard, s *Set) {
			s.SuitProgressions = AnalyzeProgressions(e.base, d, norm)
		}},
		{"lineages", func(e *Engine, d *knowledge.DeckStyle, norm []cards.NormalizedCard, s *Set) {
			s.CourtLineages = DetectLineages(e.base, d, norm)
		}},
		{"epithets", func(e *Engine, d *knowledge.DeckStyle, norm []cards.NormalizedCard, s *Set) {
			s.ThothEpithets = AnnotateEpithets(d, norm)
		}},
		{"numerology", func(e *Engine, d *knowledge.DeckStyle, norm []cards.NormalizedCard, s *Set) {
			s.MarseillePip = ClusterNumerology(d, norm)
		}},
	}
}

// Engine runs the detectors over a spread. Each detector is isolated: a
// panic in one is recovered, logged, counted, and folded into an empty
// contribution while the others complete normally.
type Engine struct {
	base      *knowledge.Base
	logger    *zap.Logger
	detectors []detector
	faults    metric.Int64Counter
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for detector fault reports.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a detection engine over the given knowledge base.
func NewEngine(base *knowledge.Base, opts ...Option) (*Engine, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	e := &Engine{
		base:      base,
		logger:    zap.NewNop(),
		detectors: defaultDetectors(),
	}
	for _, opt := range opts {
		opt(e)
	}

	faults, err := otel.Meter(instrumentationName).Int64Counter(
		"arcana.detector.faults_total",
		metric.WithDescription("Detector panics recovered during pattern detection, labeled by detector."),
		metric.WithUnit("{fault}"),
	)
	if err != nil {
		e.logger.Warn("failed to create detector fault counter", zap.Error(err))
	} else {
		e.faults = faults
	}
	return e, nil
}

// DetectOption adjusts a single detection call.
type DetectOption func(*detectConfig)

type detectConfig struct {
	deck string
}

// WithDeck selects the deck style for the call. The empty key means the
// default style.
func WithDeck(key string) DetectOption {
	return func(c *detectConfig) { c.deck = key }
}

// DetectAll runs every detector against the spread and aggregates the
// results. A nil or empty spread yields a nil set and no error, as does
// a spread in which no detector found anything.
func (e *Engine) DetectAll(ctx context.Context, spread []cards.Card, opts ...DetectOption) (*Set, error) {
	ctx, span := tracer.Start(ctx, "patterns.DetectAll")
	defer span.End()

	if len(spread) == 0 {
		return nil, nil
	}

	var cfg detectConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	deck, err := e.base.Deck(cfg.deck)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("resolving deck style: %w", err)
	}

	span.SetAttributes(
		attribute.Int("spread.cards", len(spread)),
		attribute.String("deck.style", deck.Key),
	)

	norm := cards.NormalizeAll(spread)

	var set Set
	for _, d := range e.detectors {
		e.runIsolated(ctx, d.name, deck, norm, &set, d.run)
	}

	if set.Empty() {
		return nil, nil
	}
	span.SetAttributes(
		attribute.Bool("patterns.journey", set.FoolsJourney != nil),
		attribute.Int("patterns.triads", len(set.Triads)),
		attribute.Int("patterns.dyads", len(set.Dyads)),
		attribute.Int("patterns.progressions", len(set.SuitProgressions)),
		attribute.Int("patterns.lineages", len(set.CourtLineages)),
	)
	return &set, nil
}

// runIsolated executes one detector with panic recovery. A recovered
// fault leaves the detector's contribution empty.
func (e *Engine) runIsolated(ctx context.Context, name string, deck *knowledge.DeckStyle, norm []cards.NormalizedCard, set *Set, run func(*Engine, *knowledge.DeckStyle, []cards.NormalizedCard, *Set)) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("pattern detector failed",
				zap.String("detector", name),
				zap.Any("panic", r),
				zap.Stack("stack"))
			if e.faults != nil {
				e.faults.Add(ctx, 1, metric.WithAttributes(attribute.String("detector", name)))
			}
		}
	}()
	run(e, deck, norm, set)
}
