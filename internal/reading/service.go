// Package reading turns spreads into prioritized readings.
//
// The service wraps the pattern engine and narrative prioritizer with
// request validation, reading IDs, logging, and instrumentation.
package reading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/arcana/internal/logging"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
	"github.com/fyrsmithlabs/arcana/pkg/narrative"
	"github.com/fyrsmithlabs/arcana/pkg/patterns"
)

var (
	// tracer for OpenTelemetry instrumentation
	tracer = otel.Tracer("arcana.reading")
	meter  = otel.Meter("arcana.reading")
)

// Service performs readings against one knowledge base.
type Service struct {
	engine        *patterns.Engine
	logger        *logging.Logger
	defaultDeck   string
	maxSpreadSize int

	readings metric.Int64Counter
	duration metric.Float64Histogram
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultDeck sets the deck used when a request names none.
func WithDefaultDeck(style string) Option {
	return func(s *Service) {
		if style != "" {
			s.defaultDeck = style
		}
	}
}

// WithMaxSpreadSize caps the number of cards accepted per request.
func WithMaxSpreadSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSpreadSize = n
		}
	}
}

// NewService creates a reading service over the given knowledge base.
func NewService(base *knowledge.Base, opts ...Option) (*Service, error) {
	s := &Service{
		logger:        logging.NewNop(),
		defaultDeck:   knowledge.DefaultDeck,
		maxSpreadSize: 78,
	}
	for _, opt := range opts {
		opt(s)
	}

	engine, err := patterns.NewEngine(base, patterns.WithLogger(s.logger.Underlying()))
	if err != nil {
		return nil, fmt.Errorf("creating pattern engine: %w", err)
	}
	s.engine = engine

	s.readings, err = meter.Int64Counter("arcana.readings",
		metric.WithDescription("Completed readings"))
	if err != nil {
		return nil, fmt.Errorf("creating readings counter: %w", err)
	}

	s.duration, err = meter.Float64Histogram("arcana.reading.duration",
		metric.WithDescription("Reading duration"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return s, nil
}

// Perform runs detection and prioritization for one spread.
//
// A unique reading ID is generated and attached to the context for log
// correlation. Returns ErrEmptySpread or ErrSpreadTooLarge on invalid
// requests, and wraps knowledge.ErrUnknownDeck when the requested deck
// does not exist.
func (s *Service) Perform(ctx context.Context, req *Request) (*Reading, error) {
	ctx, span := tracer.Start(ctx, "reading.Perform")
	defer span.End()

	start := time.Now()

	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if len(req.Cards) == 0 {
		span.RecordError(ErrEmptySpread)
		return nil, ErrEmptySpread
	}

	if len(req.Cards) > s.maxSpreadSize {
		err := fmt.Errorf("%w: %d cards (max %d)", ErrSpreadTooLarge, len(req.Cards), s.maxSpreadSize)
		span.RecordError(err)
		return nil, err
	}

	deck := req.Deck
	if deck == "" {
		deck = s.defaultDeck
	}

	id := "reading_" + uuid.New().String()
	ctx = logging.WithReadingID(ctx, id)

	span.SetAttributes(
		attribute.String("reading.id", id),
		attribute.String("reading.deck", deck),
		attribute.Int("reading.cards", len(req.Cards)),
	)

	set, err := s.engine.DetectAll(ctx, req.Cards, patterns.WithDeck(deck))
	if err != nil {
		span.RecordError(err)
		s.logger.Error(ctx, "pattern detection failed",
			zap.String("deck", deck),
			zap.Error(err))
		return nil, fmt.Errorf("detecting patterns: %w", err)
	}

	entries := narrative.Prioritize(set)
	if req.Limit > 0 && len(entries) > req.Limit {
		entries = entries[:req.Limit]
	}

	result := &Reading{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Deck:      deck,
		CardCount: len(req.Cards),
		Entries:   entries,
	}
	if req.IncludePatterns {
		result.Patterns = set
	}

	elapsed := time.Since(start)
	deckAttr := metric.WithAttributes(attribute.String("deck", deck))
	s.readings.Add(ctx, 1, deckAttr)
	s.duration.Record(ctx, float64(elapsed.Nanoseconds())/1e6, deckAttr)

	span.SetAttributes(attribute.Int("reading.entries", len(entries)))
	s.logger.Info(ctx, "reading complete",
		zap.String("deck", deck),
		zap.Int("cards", len(req.Cards)),
		zap.Int("entries", len(entries)),
		zap.Duration("duration", elapsed))

	return result, nil
}
