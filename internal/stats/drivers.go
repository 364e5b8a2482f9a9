package stats

import (
	"sort"

	"github.com/bigtednz/waterways-sub000/internal/results"
)

// TaxonomyBreakdown accumulates one infraction category within a run type.
type TaxonomyBreakdown struct {
	TaxonomyCode string  `json:"taxonomyCode"`
	Count        int     `json:"count"`
	Seconds      float64 `json:"seconds"`
}

// PenaltyDriver ranks one run type by how much penalty time it contributes.
type PenaltyDriver struct {
	RunTypeCode         string  `json:"runTypeCode"`
	RunTypeName         string  `json:"runTypeName,omitempty"`
	PenaltyCount        int     `json:"penaltyCount"`
	TotalPenaltySeconds float64 `json:"totalPenaltySeconds"`
	// Breakdown preserves the order in which taxonomy codes were first
	// encountered, not sorted.
	Breakdown []TaxonomyBreakdown `json:"breakdown"`
	// TrendImpact is part of the reporting contract but is filled in by the
	// caller's classification pass, not computed here.
	TrendImpact string `json:"trendImpact"`
}

// PenaltyDrivers groups all runs across all competitions by run-type code and
// accumulates penalty incidence and seconds per infraction category. The
// output is sorted descending by total penalty seconds: worst offenders
// first is a contract the coaching surfaces depend on, not a cosmetic choice.
func PenaltyDrivers(comps []results.Competition) []PenaltyDriver {
	byCode := make(map[string]*PenaltyDriver)
	order := []string{}

	for _, comp := range comps {
		for _, run := range comp.RunResults {
			driver, ok := byCode[run.RunTypeCode]
			if !ok {
				driver = &PenaltyDriver{
					RunTypeCode: run.RunTypeCode,
					RunTypeName: run.RunTypeName,
					Breakdown:   []TaxonomyBreakdown{},
				}
				byCode[run.RunTypeCode] = driver
				order = append(order, run.RunTypeCode)
			}

			for _, pen := range run.Penalties {
				driver.PenaltyCount++
				driver.TotalPenaltySeconds += pen.SecondsApplied

				found := false
				for i := range driver.Breakdown {
					if driver.Breakdown[i].TaxonomyCode == pen.TaxonomyCode {
						driver.Breakdown[i].Count++
						driver.Breakdown[i].Seconds += pen.SecondsApplied
						found = true
						break
					}
				}
				if !found {
					driver.Breakdown = append(driver.Breakdown, TaxonomyBreakdown{
						TaxonomyCode: pen.TaxonomyCode,
						Count:        1,
						Seconds:      pen.SecondsApplied,
					})
				}
			}
		}
	}

	drivers := make([]PenaltyDriver, 0, len(order))
	for _, code := range order {
		drivers = append(drivers, *byCode[code])
	}

	// Stable keeps first-seen order among run types with equal penalty time.
	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].TotalPenaltySeconds > drivers[j].TotalPenaltySeconds
	})

	return drivers
}
