package stats

import (
	"github.com/bigtednz/waterways-sub000/internal/results"
)

// RecoverableEstimate is a heuristic bound on time a paddler could reclaim
// within one run type.
type RecoverableEstimate struct {
	RunTypeCode         string  `json:"runTypeCode"`
	RunTypeName         string  `json:"runTypeName,omitempty"`
	RunCount            int     `json:"runCount"`
	TotalPenaltySeconds float64 `json:"totalPenaltySeconds"`
	ConsistencyIQR      float64 `json:"consistencyIqr"`
	RecoverableSeconds  float64 `json:"recoverableSeconds"`
}

// EstimateRecoverableTime computes the recoverable-time estimate for runs of
// one run type: total penalty seconds plus half the clean-time IQR. Penalty
// seconds are unambiguously recoverable; half the IQR stands in for variance
// that better consistency could close. This is a coaching heuristic, not a
// statistical bound. An empty input yields a zeroed estimate.
func EstimateRecoverableTime(runs []results.RunResult) RecoverableEstimate {
	est := RecoverableEstimate{RunCount: len(runs)}
	if len(runs) == 0 {
		return est
	}

	est.RunTypeCode = runs[0].RunTypeCode
	est.RunTypeName = runs[0].RunTypeName

	cleanTimes := make([]float64, 0, len(runs))
	for _, run := range runs {
		est.TotalPenaltySeconds += run.PenaltySeconds
		cleanTimes = append(cleanTimes, CleanTime(run.TotalTimeSeconds, run.PenaltySeconds))
	}

	est.ConsistencyIQR = IQR(cleanTimes)
	est.RecoverableSeconds = est.TotalPenaltySeconds + 0.5*est.ConsistencyIQR
	return est
}
