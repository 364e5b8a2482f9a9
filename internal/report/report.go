package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bigtednz/waterways-sub000/internal/results"
	"github.com/bigtednz/waterways-sub000/internal/scenario"
	"github.com/bigtednz/waterways-sub000/internal/stats"
)

// SeasonReport bundles the aggregate performance signals for one batch of
// competitions.
type SeasonReport struct {
	EngineVersion string                      `json:"engineVersion"`
	SeasonID      string                      `json:"seasonId,omitempty"`
	Trends        []stats.CompetitionTrend    `json:"trends"`
	Drivers       []stats.PenaltyDriver       `json:"drivers"`
	Recoverable   []stats.RecoverableEstimate `json:"recoverable"`
}

// ScenarioComparison pairs the baseline report with the report recomputed
// under a scenario overlay of the same data.
type ScenarioComparison struct {
	ScenarioID   string       `json:"scenarioId"`
	ScenarioName string       `json:"scenarioName,omitempty"`
	Baseline     SeasonReport `json:"baseline"`
	Scenario     SeasonReport `json:"scenario"`
}

// Build computes trends, drivers and per-run-type recoverable estimates for
// a competition batch. The three aggregations are independent and pure, so
// they run concurrently; none of them can fail, the errgroup is there for
// the join.
func Build(seasonID string, comps []results.Competition) SeasonReport {
	rep := SeasonReport{
		EngineVersion: stats.EngineVersion,
		SeasonID:      seasonID,
	}

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		rep.Trends = stats.CompetitionTrends(comps)
		return nil
	})
	g.Go(func() error {
		rep.Drivers = stats.PenaltyDrivers(comps)
		return nil
	})
	g.Go(func() error {
		rep.Recoverable = recoverableByRunType(comps)
		return nil
	})
	_ = g.Wait()

	return rep
}

// BuildFor pulls a season from the provider and builds its report.
func BuildFor(p results.Provider, seasonID string) SeasonReport {
	return Build(seasonID, p.Competitions(seasonID))
}

// CompareScenario builds the baseline report and the report over a scenario
// overlay of the same competitions. The overlay works on its own deep clone,
// so both sides see independent data; they are computed concurrently.
func CompareScenario(seasonID string, comps []results.Competition, sc scenario.Scenario) ScenarioComparison {
	cmp := ScenarioComparison{
		ScenarioID:   sc.ID,
		ScenarioName: sc.Name,
	}

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		cmp.Baseline = Build(seasonID, comps)
		return nil
	})
	g.Go(func() error {
		adjusted := scenario.Apply(comps, sc.Adjustments)
		cmp.Scenario = Build(seasonID, adjusted)
		return nil
	})
	_ = g.Wait()

	return cmp
}

// recoverableByRunType groups runs by run-type code (first-seen order) and
// estimates recoverable time per type.
func recoverableByRunType(comps []results.Competition) []stats.RecoverableEstimate {
	byCode := make(map[string][]results.RunResult)
	order := []string{}

	for _, comp := range comps {
		for _, run := range comp.RunResults {
			if _, ok := byCode[run.RunTypeCode]; !ok {
				order = append(order, run.RunTypeCode)
			}
			byCode[run.RunTypeCode] = append(byCode[run.RunTypeCode], run)
		}
	}

	estimates := make([]stats.RecoverableEstimate, 0, len(order))
	for _, code := range order {
		estimates = append(estimates, stats.EstimateRecoverableTime(byCode[code]))
	}
	return estimates
}
