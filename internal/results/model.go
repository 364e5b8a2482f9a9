package results

import (
	"time"
)

// Penalty is an immutable record of one rule infraction on one run.
// SecondsApplied may be zero for non-time outcomes (disqualification, warning).
type Penalty struct {
	ID string `json:"id,omitempty"`
	// TaxonomyCode is the infraction category (e.g. GATE_TOUCH, GATE_MISS, ORDER_VIOLATION).
	TaxonomyCode string `json:"taxonomyCode"`
	// RuleID identifies the specific rule that was applied.
	RuleID         string  `json:"ruleId,omitempty"`
	SecondsApplied float64 `json:"secondsApplied"`
}

// RunResult is one timed attempt at one run type within one competition.
// RunTypeCode and RunTypeName are denormalized so results can be displayed
// without a join against the run-type catalogue.
type RunResult struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competitionId"`
	RunTypeID     string `json:"runTypeId,omitempty"`
	RunTypeCode   string `json:"runTypeCode"`
	RunTypeName   string `json:"runTypeName,omitempty"`
	// TotalTimeSeconds is the elapsed time for the run, >= 0.
	TotalTimeSeconds float64 `json:"totalTimeSeconds"`
	// PenaltySeconds is the sum of SecondsApplied across Penalties. It is
	// stored denormalized and must be rederived after any penalty edit.
	PenaltySeconds float64   `json:"penaltySeconds"`
	Penalties      []Penalty `json:"penalties,omitempty"`
}

// RecomputePenaltySeconds rederives the denormalized penalty total from the
// penalty list. Call after every mutation of Penalties.
func (r *RunResult) RecomputePenaltySeconds() {
	var total float64
	for _, p := range r.Penalties {
		total += p.SecondsApplied
	}
	r.PenaltySeconds = total
}

// Clone returns a deep copy of the run result.
func (r RunResult) Clone() RunResult {
	out := r
	if r.Penalties != nil {
		out.Penalties = make([]Penalty, len(r.Penalties))
		copy(out.Penalties, r.Penalties)
	}
	return out
}

// Competition is a named event on a date, owning its run results in
// creation order. SeasonID is opaque to the analytics core; it is a filter
// and scope key only.
type Competition struct {
	ID         string      `json:"id"`
	SeasonID   string      `json:"seasonId,omitempty"`
	Name       string      `json:"name"`
	Date       time.Time   `json:"date"`
	RunResults []RunResult `json:"runResults,omitempty"`
}

// Clone returns a deep copy of the competition, including all run results
// and their penalties.
func (c Competition) Clone() Competition {
	out := c
	if c.RunResults != nil {
		out.RunResults = make([]RunResult, len(c.RunResults))
		for i, r := range c.RunResults {
			out.RunResults[i] = r.Clone()
		}
	}
	return out
}

// CloneCompetitions deep-copies a competition list. Callers that overlay
// hypothetical adjustments must work on a clone so the baseline stays intact.
func CloneCompetitions(comps []Competition) []Competition {
	if comps == nil {
		return nil
	}
	out := make([]Competition, len(comps))
	for i, c := range comps {
		out[i] = c.Clone()
	}
	return out
}

// ParseDate accepts the date representations upstream exporters produce:
// a plain ISO date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
