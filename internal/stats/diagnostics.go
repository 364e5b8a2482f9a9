package stats

import (
	"errors"

	"github.com/bigtednz/waterways-sub000/internal/results"
)

// ErrNoRunResults signals a provider precondition violation: run diagnostics
// need at least one run to know which run type they report on.
var ErrNoRunResults = errors.New("run diagnostics: empty run result list")

// DefaultWindowSize is the trailing-window length used when the caller does
// not request one.
const DefaultWindowSize = 3

// DiagnosticPoint is one run mapped into the diagnostic series. Competition
// name and date are intentionally blank; joining them in from a competition
// lookup is the caller's job.
type DiagnosticPoint struct {
	CompetitionID   string  `json:"competitionId"`
	CompetitionName string  `json:"competitionName,omitempty"`
	Date            string  `json:"date,omitempty"`
	CleanTime       float64 `json:"cleanTime"`
	PenaltySeconds  float64 `json:"penaltySeconds"`
	TotalTime       float64 `json:"totalTime"`
}

// RollingMedianPoint carries the median clean time of one trailing window,
// tagged with the index of the window's last data point.
type RollingMedianPoint struct {
	Index  int     `json:"index"`
	Median float64 `json:"median"`
}

// RollingBandPoint carries the Q1/Q3 clean-time band of one trailing window.
type RollingBandPoint struct {
	Index int     `json:"index"`
	Q1    float64 `json:"q1"`
	Q3    float64 `json:"q3"`
}

// RunDiagnostics is the rolling-window diagnostic output for one run type.
type RunDiagnostics struct {
	RunTypeCode   string               `json:"runTypeCode"`
	RunTypeName   string               `json:"runTypeName,omitempty"`
	WindowSize    int                  `json:"windowSize"`
	Points        []DiagnosticPoint    `json:"points"`
	RollingMedian []RollingMedianPoint `json:"rollingMedian"`
	RollingBand   []RollingBandPoint   `json:"rollingBand"`
}

// ComputeRunDiagnostics builds the diagnostic series for runs that all belong
// to one run type; the provider owns that pre-filter and the first element is
// taken as representative. Input order is assumed chronological and is not
// re-sorted here. windowSize <= 0 falls back to DefaultWindowSize.
//
// Returns ErrNoRunResults for an empty input. With fewer runs than the
// window, the data points are still returned and both rolling series are
// empty. This is a trailing-window computation, not a streaming one: all
// input is materialized up front.
func ComputeRunDiagnostics(runs []results.RunResult, windowSize int) (*RunDiagnostics, error) {
	if len(runs) == 0 {
		return nil, ErrNoRunResults
	}
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	diag := &RunDiagnostics{
		RunTypeCode:   runs[0].RunTypeCode,
		RunTypeName:   runs[0].RunTypeName,
		WindowSize:    windowSize,
		Points:        make([]DiagnosticPoint, 0, len(runs)),
		RollingMedian: []RollingMedianPoint{},
		RollingBand:   []RollingBandPoint{},
	}

	cleanTimes := make([]float64, 0, len(runs))
	for _, run := range runs {
		clean := CleanTime(run.TotalTimeSeconds, run.PenaltySeconds)
		cleanTimes = append(cleanTimes, clean)
		diag.Points = append(diag.Points, DiagnosticPoint{
			CompetitionID:  run.CompetitionID,
			CleanTime:      clean,
			PenaltySeconds: run.PenaltySeconds,
			TotalTime:      run.TotalTimeSeconds,
		})
	}

	for end := windowSize; end <= len(cleanTimes); end++ {
		window := cleanTimes[end-windowSize : end]
		last := end - 1
		diag.RollingMedian = append(diag.RollingMedian, RollingMedianPoint{
			Index:  last,
			Median: Median(window),
		})
		diag.RollingBand = append(diag.RollingBand, RollingBandPoint{
			Index: last,
			Q1:    Percentile(window, 0.25),
			Q3:    Percentile(window, 0.75),
		})
	}

	return diag, nil
}
