package scenario

import (
	"github.com/bigtednz/waterways-sub000/internal/results"
)

// Apply overlays an ordered list of adjustments onto a deep clone of the
// baseline and returns the adjusted competitions. The baseline is never
// touched; callers routinely aggregate both the baseline and the returned
// clone and compare them. Entities are never created or removed and all
// identifiers survive the pass; only numeric and penalty fields change.
//
// Applicable adjustments are gathered broadest to narrowest, each scope
// bucket internally in submission order: season by id, season "ALL",
// competition by id, competition "ALL", then per run result run-type by id,
// run-type by code, run-result by id, run-type "ALL", run-result "ALL".
// They fold over the run result in that sequence, each acting on the output
// of the previous one. An adjustment whose scope matches nothing is inert,
// never an error.
func Apply(baseline []results.Competition, adjs []Adjustment) []results.Competition {
	adjusted := results.CloneCompetitions(baseline)
	if len(adjs) == 0 {
		return adjusted
	}

	index := make(map[string][]Adjustment, len(adjs))
	for _, adj := range adjs {
		key := adj.scopeKey()
		index[key] = append(index[key], adj)
	}

	for i := range adjusted {
		comp := &adjusted[i]

		// Fresh slice per competition; never append onto the index's own
		// backing arrays.
		compAdjs := make([]Adjustment, 0, 4)
		compAdjs = append(compAdjs, byID(index, ScopeSeason, comp.SeasonID)...)
		compAdjs = append(compAdjs, index[scopeKey(ScopeSeason, "")]...)
		compAdjs = append(compAdjs, byID(index, ScopeCompetition, comp.ID)...)
		compAdjs = append(compAdjs, index[scopeKey(ScopeCompetition, "")]...)

		for j := range comp.RunResults {
			run := &comp.RunResults[j]

			runAdjs := make([]Adjustment, 0, len(compAdjs)+4)
			runAdjs = append(runAdjs, compAdjs...)
			runAdjs = append(runAdjs, byID(index, ScopeRunType, run.RunTypeID)...)
			runAdjs = append(runAdjs, byID(index, ScopeRunType, run.RunTypeCode)...)
			runAdjs = append(runAdjs, byID(index, ScopeRunResult, run.ID)...)
			runAdjs = append(runAdjs, index[scopeKey(ScopeRunType, "")]...)
			runAdjs = append(runAdjs, index[scopeKey(ScopeRunResult, "")]...)

			for _, adj := range runAdjs {
				applyToRun(run, adj)
			}
		}
	}

	return adjusted
}

// byID looks up adjustments keyed by a concrete entity id. An empty id must
// not alias the "ALL" sentinel; the sentinel bucket is fetched separately at
// its own precedence position.
func byID(index map[string][]Adjustment, t ScopeType, id string) []Adjustment {
	if id == "" {
		return nil
	}
	return index[string(t)+":"+id]
}

func applyToRun(run *results.RunResult, adj Adjustment) {
	switch adj.Type {
	case RemovePenaltyTaxonomy:
		kept := run.Penalties[:0]
		for _, pen := range run.Penalties {
			if pen.TaxonomyCode != adj.TaxonomyCode {
				kept = append(kept, pen)
			}
		}
		run.Penalties = kept
		run.RecomputePenaltySeconds()

	case OverridePenaltySeconds:
		for i := range run.Penalties {
			if matchesPenalty(run.Penalties[i], adj) {
				run.Penalties[i].SecondsApplied = adj.OverrideSeconds
			}
		}
		run.RecomputePenaltySeconds()

	case CleanTimeDelta:
		if adj.RunTypeCode != "" && adj.RunTypeCode != run.RunTypeCode {
			return
		}
		run.TotalTimeSeconds -= adj.SecondsDelta
		if run.TotalTimeSeconds < 0 {
			run.TotalTimeSeconds = 0
		}
	}
}

// matchesPenalty applies the override filter: taxonomy code when given,
// otherwise rule id when given.
func matchesPenalty(pen results.Penalty, adj Adjustment) bool {
	if adj.TaxonomyCode != "" {
		return pen.TaxonomyCode == adj.TaxonomyCode
	}
	if adj.PenaltyRuleID != "" {
		return pen.RuleID == adj.PenaltyRuleID
	}
	return true
}
