package stats

import (
	"time"

	"github.com/bigtednz/waterways-sub000/internal/results"
)

// CompetitionTrend summarizes one competition's performance signals.
type CompetitionTrend struct {
	CompetitionID string `json:"competitionId"`
	Name          string `json:"name"`
	// Date is normalized to an ISO date string regardless of how the
	// provider represented it.
	Date            string  `json:"date"`
	MedianCleanTime float64 `json:"medianCleanTime"`
	// PenaltyLoad is the sum of penalty seconds across the competition's runs.
	PenaltyLoad float64 `json:"penaltyLoad"`
	// PenaltyRate is the share of runs that carried any penalty time.
	PenaltyRate    float64 `json:"penaltyRate"`
	ConsistencyIQR float64 `json:"consistencyIqr"`
	RunCount       int     `json:"runCount"`
}

// CompetitionTrends computes one trend record per input competition,
// order-preserving. A competition with zero runs yields zeroed metrics; an
// empty input yields empty output. The input is never mutated.
func CompetitionTrends(comps []results.Competition) []CompetitionTrend {
	trends := make([]CompetitionTrend, 0, len(comps))

	for _, comp := range comps {
		trend := CompetitionTrend{
			CompetitionID: comp.ID,
			Name:          comp.Name,
			Date:          isoDate(comp.Date),
			RunCount:      len(comp.RunResults),
		}

		cleanTimes := make([]float64, 0, len(comp.RunResults))
		penalized := 0
		for _, run := range comp.RunResults {
			cleanTimes = append(cleanTimes, CleanTime(run.TotalTimeSeconds, run.PenaltySeconds))
			trend.PenaltyLoad += run.PenaltySeconds
			if run.PenaltySeconds > 0 {
				penalized++
			}
		}

		trend.MedianCleanTime = Median(cleanTimes)
		trend.ConsistencyIQR = IQR(cleanTimes)
		if len(comp.RunResults) > 0 {
			trend.PenaltyRate = float64(penalized) / float64(len(comp.RunResults))
		}

		trends = append(trends, trend)
	}

	return trends
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
