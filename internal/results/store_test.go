package results

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fixtureCompetition(id string, date time.Time) Competition {
	return Competition{
		ID:       id,
		SeasonID: "2026",
		Name:     "Regatta " + id,
		Date:     date,
		RunResults: []RunResult{
			{
				ID:               id + "-r1",
				CompetitionID:    id,
				RunTypeCode:      "K1",
				TotalTimeSeconds: 100,
				PenaltySeconds:   2,
				Penalties:        []Penalty{{TaxonomyCode: "GATE_TOUCH", RuleID: "RULE_28.1", SecondsApplied: 2}},
			},
		},
	}
}

func TestStore_AppendDedupesAndSorts(t *testing.T) {
	store := NewStore()
	early := fixtureCompetition("comp-a", time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC))
	late := fixtureCompetition("comp-b", time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC))

	store.Append("2026", []Competition{late, early})
	store.Append("2026", []Competition{early}) // duplicate

	comps := store.Competitions("2026")
	if len(comps) != 2 {
		t.Fatalf("Expected 2 competitions after dedupe, got %d", len(comps))
	}
	if comps[0].ID != "comp-a" || comps[1].ID != "comp-b" {
		t.Errorf("Expected chronological order comp-a, comp-b, got %s, %s", comps[0].ID, comps[1].ID)
	}
}

func TestStore_CompetitionsReturnsIsolatedClones(t *testing.T) {
	store := NewStore()
	store.Append("2026", []Competition{fixtureCompetition("comp-a", time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC))})

	first := store.Competitions("2026")
	first[0].RunResults[0].Penalties[0].SecondsApplied = 999
	first[0].RunResults[0].PenaltySeconds = 999

	second := store.Competitions("2026")
	if second[0].RunResults[0].PenaltySeconds != 2 {
		t.Errorf("Mutating a returned clone leaked into the store")
	}
	if second[0].RunResults[0].Penalties[0].SecondsApplied != 2 {
		t.Errorf("Mutating a returned penalty leaked into the store")
	}
}

func TestStore_RunResultsByType(t *testing.T) {
	store := NewStore()
	comp := fixtureCompetition("comp-a", time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC))
	comp.RunResults = append(comp.RunResults, RunResult{
		ID: "comp-a-r2", CompetitionID: "comp-a", RunTypeCode: "C1", TotalTimeSeconds: 110,
	})
	store.Append("2026", []Competition{comp})

	k1 := store.RunResultsByType("2026", "K1")
	if len(k1) != 1 || k1[0].RunTypeCode != "K1" {
		t.Fatalf("Expected single K1 run, got %+v", k1)
	}

	if none := store.RunResultsByType("2026", "K1T"); len(none) != 0 {
		t.Errorf("Expected no runs for unknown run type, got %d", len(none))
	}
}

func TestStore_Persistence(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "results-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store1 := NewStore()
	comps := []Competition{
		fixtureCompetition("comp-a", time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC)),
		fixtureCompetition("comp-b", time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC)),
	}
	store1.Append("2026", comps)

	if err := store1.Save(tmpDir, "2026"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cachePath := filepath.Join(tmpDir, "season-2026.jsonl")
	if _, err := os.Stat(cachePath); os.IsNotExist(err) {
		t.Errorf("Cache file does not exist: %s", cachePath)
	}

	store2 := NewStore()
	if err := store2.Load(tmpDir, "2026"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(store1.Competitions("2026"), store2.Competitions("2026")); diff != "" {
		t.Errorf("Round-tripped season differs (-saved +loaded):\n%s", diff)
	}

	// Re-append after reload must deduplicate.
	store2.Append("2026", comps)
	if store2.Count("2026") != 2 {
		t.Errorf("Expected 2 competitions after re-append, got %d", store2.Count("2026"))
	}
}

func TestStore_LoadMissingCacheIsNotAnError(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore()
	if err := store.Load(tmpDir, "2031"); err != nil {
		t.Errorf("Missing cache must not be an error, got %v", err)
	}
	if store.Count("2031") != 0 {
		t.Errorf("Expected empty season, got %d", store.Count("2031"))
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"ISODate", "2026-04-18", time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC)},
		{"RFC3339", "2026-04-18T09:30:00Z", time.Date(2026, 4, 18, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseDate("18/04/2026"); err == nil {
		t.Errorf("Expected error for unsupported date layout")
	}
}
