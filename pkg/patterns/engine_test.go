package patterns

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fyrsmithlabs/arcana/pkg/cards"
	"github.com/fyrsmithlabs/arcana/pkg/knowledge"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(testBase(t), opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngine_RequiresBase(t *testing.T) {
	if _, err := NewEngine(nil); !errors.Is(err, ErrNilBase) {
		t.Fatalf("err = %v, want ErrNilBase", err)
	}
}

func TestDetectAll_EmptySpread(t *testing.T) {
	e := newTestEngine(t)

	set, err := e.DetectAll(context.Background(), nil)
	if err != nil || set != nil {
		t.Errorf("nil spread = %+v, %v; want nil, nil", set, err)
	}
	set, err = e.DetectAll(context.Background(), []cards.Card{})
	if err != nil || set != nil {
		t.Errorf("empty spread = %+v, %v; want nil, nil", set, err)
	}
}

func TestDetectAll_NothingMatchable(t *testing.T) {
	e := newTestEngine(t)

	spread := []cards.Card{{Name: "Mystery"}, {Name: "Enigma"}}
	set, err := e.DetectAll(context.Background(), spread)
	if err != nil {
		t.Fatalf("DetectAll: %v", err)
	}
	if set != nil {
		t.Errorf("unmatchable spread = %+v, want nil", set)
	}
}

func TestDetectAll_HealingArcSpread(t *testing.T) {
	e := newTestEngine(t)

	set, err := e.DetectAll(context.Background(), majors(13, 14, 17))
	if err != nil {
		t.Fatalf("DetectAll: %v", err)
	}
	if set == nil {
		t.Fatal("expected a pattern set")
	}
	if len(set.Triads) == 0 || set.Triads[0].ID != "death-temperance-star" {
		t.Errorf("Triads = %+v", set.Triads)
	}
	if set.FoolsJourney == nil || set.FoolsJourney.Stage != knowledge.JourneyInitiation {
		t.Errorf("FoolsJourney = %+v", set.FoolsJourney)
	}
	found := false
	for _, d := range set.Dyads {
		if d.Theme == "Transformation clearing into hope" {
			found = true
		}
	}
	if !found {
		t.Errorf("Dyads = %+v, want the death+star pair", set.Dyads)
	}
}

func TestDetectAll_UnknownDeck(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.DetectAll(context.Background(), majors(13), WithDeck("golden-dawn"))
	if !errors.Is(err, knowledge.ErrUnknownDeck) {
		t.Fatalf("err = %v, want ErrUnknownDeck", err)
	}
}

func TestDetectAll_DeckOverlays(t *testing.T) {
	e := newTestEngine(t)
	spread := []cards.Card{pip(cards.Wands, 2), pip(cards.Cups, 2)}

	set, err := e.DetectAll(context.Background(), spread, WithDeck("thoth"))
	if err != nil {
		t.Fatalf("DetectAll(thoth): %v", err)
	}
	if set == nil || set.ThothEpithets == nil {
		t.Errorf("thoth set = %+v, want epithets", set)
	}
	if set != nil && set.MarseillePip != nil {
		t.Errorf("thoth set grew marseille clusters: %+v", set.MarseillePip)
	}

	set, err = e.DetectAll(context.Background(), spread, WithDeck("marseille"))
	if err != nil {
		t.Fatalf("DetectAll(marseille): %v", err)
	}
	if set == nil || set.MarseillePip == nil {
		t.Errorf("marseille set = %+v, want pip clusters", set)
	}
	if set != nil && set.ThothEpithets != nil {
		t.Errorf("marseille set grew epithets: %+v", set.ThothEpithets)
	}
}

func TestDetectAll_FaultIsolation(t *testing.T) {
	core, observed := observer.New(zapcore.ErrorLevel)
	e := newTestEngine(t, WithLogger(zap.New(core)))

	for i := range e.detectors {
		if e.detectors[i].name == "triads" {
			e.detectors[i].run = func(*Engine, *knowledge.DeckStyle, []cards.NormalizedCard, *Set) {
				panic("kaboom")
			}
		}
	}

	set, err := e.DetectAll(context.Background(), majors(13, 14, 17))
	if err != nil {
		t.Fatalf("DetectAll: %v", err)
	}
	if set == nil {
		t.Fatal("sibling detectors should still contribute")
	}
	if len(set.Triads) != 0 {
		t.Errorf("faulted detector contributed: %+v", set.Triads)
	}
	if set.FoolsJourney == nil || len(set.Dyads) == 0 {
		t.Errorf("siblings lost their contributions: %+v", set)
	}

	entries := observed.FilterMessage("pattern detector failed").All()
	if len(entries) != 1 {
		t.Fatalf("fault log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["detector"] != "triads" {
		t.Errorf("logged detector = %v", fields["detector"])
	}
	if fields["panic"] != "kaboom" {
		t.Errorf("logged panic = %v", fields["panic"])
	}
}

func TestDetectAll_AllDetectorsFault(t *testing.T) {
	e := newTestEngine(t)
	for i := range e.detectors {
		e.detectors[i].run = func(*Engine, *knowledge.DeckStyle, []cards.NormalizedCard, *Set) {
			panic("kaboom")
		}
	}

	set, err := e.DetectAll(context.Background(), majors(13, 14, 17))
	if err != nil {
		t.Fatalf("DetectAll: %v", err)
	}
	if set != nil {
		t.Errorf("all-faulted run = %+v, want nil", set)
	}
}
