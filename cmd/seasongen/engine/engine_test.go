package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := GeneratorConfig{
		SeasonID:     "2026",
		Competitions: 4,
		RunsPerType:  3,
		Seed:         42,
	}

	first := Generate(cfg)
	second := Generate(cfg)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Same seed produced different seasons (-first +second):\n%s", diff)
	}
}

func TestGenerate_Shape(t *testing.T) {
	cfg := GeneratorConfig{
		SeasonID:     "2026",
		Competitions: 3,
		RunsPerType:  2,
		Seed:         7,
	}

	comps := Generate(cfg)
	if len(comps) != 3 {
		t.Fatalf("Expected 3 competitions, got %d", len(comps))
	}

	for _, comp := range comps {
		if comp.SeasonID != "2026" {
			t.Errorf("Competition %s missing season id", comp.ID)
		}
		// 3 boat classes x 2 runs each
		if len(comp.RunResults) != 6 {
			t.Errorf("Competition %s: expected 6 runs, got %d", comp.ID, len(comp.RunResults))
		}
		for _, run := range comp.RunResults {
			if run.TotalTimeSeconds < 0 {
				t.Errorf("Run %s has negative total time", run.ID)
			}
			var sum float64
			for _, pen := range run.Penalties {
				sum += pen.SecondsApplied
			}
			if run.PenaltySeconds != sum {
				t.Errorf("Run %s: penaltySeconds %v out of sync with penalty list", run.ID, run.PenaltySeconds)
			}
		}
	}

	if !comps[0].Date.Before(comps[1].Date) || !comps[1].Date.Before(comps[2].Date) {
		t.Errorf("Expected competitions in chronological order")
	}
}
