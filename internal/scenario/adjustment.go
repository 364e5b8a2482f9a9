package scenario

// ScopeType is the granularity at which an adjustment applies.
type ScopeType string

const (
	ScopeSeason      ScopeType = "SEASON"
	ScopeCompetition ScopeType = "COMPETITION"
	ScopeRunType     ScopeType = "RUN_TYPE"
	ScopeRunResult   ScopeType = "RUN_RESULT"
)

// AdjustmentType selects which hypothetical edit an adjustment performs.
type AdjustmentType string

const (
	// RemovePenaltyTaxonomy drops every penalty whose taxonomy code matches.
	RemovePenaltyTaxonomy AdjustmentType = "REMOVE_PENALTY_TAXONOMY"
	// OverridePenaltySeconds rewrites the seconds applied by matching penalties.
	OverridePenaltySeconds AdjustmentType = "OVERRIDE_PENALTY_SECONDS"
	// CleanTimeDelta shaves seconds off the run's total time, clamped at zero.
	// Penalty seconds are untouched, so the net effect is a clean-time delta.
	CleanTimeDelta AdjustmentType = "CLEAN_TIME_DELTA"
)

// scopeAll is the index sentinel for an adjustment whose scope id is empty,
// meaning "everything within that scope type".
const scopeAll = "ALL"

// Adjustment is one hypothetical edit overlaid on baseline data. Which
// payload fields are read depends on Type:
//
//	REMOVE_PENALTY_TAXONOMY:  TaxonomyCode
//	OVERRIDE_PENALTY_SECONDS: OverrideSeconds, plus TaxonomyCode or
//	                          PenaltyRuleID as the match filter (taxonomy
//	                          code wins when both are set)
//	CLEAN_TIME_DELTA:         SecondsDelta, optionally RunTypeCode as filter
type Adjustment struct {
	ScopeType ScopeType `json:"scopeType"`
	// ScopeID empty means "all" within the scope type.
	ScopeID string         `json:"scopeId,omitempty"`
	Type    AdjustmentType `json:"type"`

	TaxonomyCode    string  `json:"taxonomyCode,omitempty"`
	PenaltyRuleID   string  `json:"penaltyRuleId,omitempty"`
	OverrideSeconds float64 `json:"overrideSeconds,omitempty"`
	SecondsDelta    float64 `json:"secondsDelta,omitempty"`
	RunTypeCode     string  `json:"runTypeCode,omitempty"`
}

// Scenario is an ordered list of adjustments. Order matters: adjustments of
// the same scope apply sequentially, later ones acting on the result of
// earlier ones.
type Scenario struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	Adjustments []Adjustment `json:"adjustments"`
}

func (a Adjustment) scopeKey() string {
	id := a.ScopeID
	if id == "" {
		id = scopeAll
	}
	return string(a.ScopeType) + ":" + id
}

func scopeKey(t ScopeType, id string) string {
	if id == "" {
		id = scopeAll
	}
	return string(t) + ":" + id
}
