package mcp

import (
	"strings"
	"testing"
	"time"

	"github.com/bigtednz/waterways-sub000/internal/config"
	"github.com/bigtednz/waterways-sub000/internal/report"
	"github.com/bigtednz/waterways-sub000/internal/results"
	"github.com/bigtednz/waterways-sub000/internal/scenario"
	"github.com/bigtednz/waterways-sub000/internal/stats"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.AppConfig{
		CacheDir:          t.TempDir(),
		DefaultWindowSize: 3,
	}

	store := results.NewStore()
	store.Append("2026", []results.Competition{
		{
			ID:       "comp-1",
			SeasonID: "2026",
			Name:     "Spring Regatta",
			Date:     time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC),
			RunResults: []results.RunResult{
				{ID: "r1", CompetitionID: "comp-1", RunTypeCode: "K1",
					TotalTimeSeconds: 100, PenaltySeconds: 10,
					Penalties: []results.Penalty{{TaxonomyCode: "ORDER_VIOLATION", SecondsApplied: 10}}},
				{ID: "r2", CompetitionID: "comp-1", RunTypeCode: "K1",
					TotalTimeSeconds: 90, PenaltySeconds: 0},
			},
		},
	})

	return NewServer(cfg, store, scenario.NewStore(), nil)
}

func TestHandleCompetitionTrends(t *testing.T) {
	s := testServer(t)

	data, err := s.handleCompetitionTrends("2026")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result := data.(map[string]interface{})
	trends := result["trends"].([]stats.CompetitionTrend)
	if len(trends) != 1 {
		t.Fatalf("Expected 1 trend, got %d", len(trends))
	}
	if trends[0].MedianCleanTime != 90 {
		t.Errorf("Expected median clean time 90, got %v", trends[0].MedianCleanTime)
	}
}

func TestHandleRunDiagnostics_UnknownRunType(t *testing.T) {
	s := testServer(t)

	_, err := s.handleRunDiagnostics("2026", "C2", 0)
	if err == nil {
		t.Fatalf("Expected error for run type with no recorded runs")
	}
	if !strings.Contains(err.Error(), "C2") {
		t.Errorf("Expected error to name the run type, got %v", err)
	}
}

func TestHandleDefineScenario_AndCompare(t *testing.T) {
	s := testServer(t)

	_, err := s.handleDefineScenario(map[string]interface{}{
		"scenario_id": "clean-orders",
		"name":        "No order violations",
		"adjustments": []interface{}{
			map[string]interface{}{
				"scopeType":    "SEASON",
				"scopeId":      "2026",
				"type":         "REMOVE_PENALTY_TAXONOMY",
				"taxonomyCode": "ORDER_VIOLATION",
			},
		},
	})
	if err != nil {
		t.Fatalf("define_scenario failed: %v", err)
	}

	data, err := s.handleCompareScenario("2026", "clean-orders")
	if err != nil {
		t.Fatalf("compare_scenario failed: %v", err)
	}

	comparison := data.(report.ScenarioComparison)
	if comparison.Baseline.Trends[0].PenaltyLoad != 10 {
		t.Errorf("Expected baseline penalty load 10, got %v", comparison.Baseline.Trends[0].PenaltyLoad)
	}
	if comparison.Scenario.Trends[0].PenaltyLoad != 0 {
		t.Errorf("Expected scenario penalty load 0, got %v", comparison.Scenario.Trends[0].PenaltyLoad)
	}
}

func TestHandleDefineScenario_Validation(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"MissingID", map[string]interface{}{
			"adjustments": []interface{}{},
		}},
		{"EmptyAdjustments", map[string]interface{}{
			"scenario_id": "sc-1",
			"adjustments": []interface{}{},
		}},
		{"BadScopeType", map[string]interface{}{
			"scenario_id": "sc-1",
			"adjustments": []interface{}{
				map[string]interface{}{"scopeType": "GALAXY", "type": "CLEAN_TIME_DELTA"},
			},
		}},
		{"RemoveWithoutTaxonomy", map[string]interface{}{
			"scenario_id": "sc-1",
			"adjustments": []interface{}{
				map[string]interface{}{"scopeType": "SEASON", "type": "REMOVE_PENALTY_TAXONOMY"},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.handleDefineScenario(tt.args); err == nil {
				t.Errorf("Expected validation error")
			}
		})
	}
}

func TestHandleCompareScenario_UnknownScenario(t *testing.T) {
	s := testServer(t)
	if _, err := s.handleCompareScenario("2026", "nope"); err == nil {
		t.Errorf("Expected error for unknown scenario")
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int
	}{
		{"Nil", nil, 0},
		{"Float", float64(5), 5},
		{"Int", 7, 7},
		{"String", "9", 9},
		{"Garbage", struct{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := asInt(tt.input); got != tt.expected {
				t.Errorf("asInt(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
