package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/bigtednz/waterways-sub000/internal/audit"
	"github.com/bigtednz/waterways-sub000/internal/report"
	"github.com/bigtednz/waterways-sub000/internal/scenario"
)

func (s *Server) handleDefineScenario(args map[string]interface{}) (interface{}, error) {
	scenarioID := asString(args["scenario_id"])
	if scenarioID == "" {
		return nil, fmt.Errorf("scenario_id is required")
	}

	rawAdjs, ok := args["adjustments"]
	if !ok {
		return nil, fmt.Errorf("adjustments are required")
	}

	// Round-trip through JSON to decode the loosely-typed tool arguments
	// into the typed adjustment list, preserving submission order.
	encoded, err := json.Marshal(rawAdjs)
	if err != nil {
		return nil, fmt.Errorf("invalid adjustments: %w", err)
	}
	var adjs []scenario.Adjustment
	if err := json.Unmarshal(encoded, &adjs); err != nil {
		return nil, fmt.Errorf("invalid adjustments: %w", err)
	}
	if len(adjs) == 0 {
		return nil, fmt.Errorf("adjustments must not be empty")
	}

	for i, adj := range adjs {
		if err := validateAdjustment(adj); err != nil {
			return nil, fmt.Errorf("adjustment %d: %w", i, err)
		}
	}

	sc := scenario.Scenario{
		ID:          scenarioID,
		Name:        asString(args["name"]),
		Adjustments: adjs,
	}
	s.scenarios.Put(sc)

	if err := s.scenarios.Save(s.cfg.CacheDir); err != nil {
		log.Warn().Err(err).Msg("Failed to persist scenario cache")
	}

	return map[string]interface{}{
		"scenarioId":  sc.ID,
		"adjustments": len(sc.Adjustments),
	}, nil
}

func validateAdjustment(adj scenario.Adjustment) error {
	switch adj.ScopeType {
	case scenario.ScopeSeason, scenario.ScopeCompetition, scenario.ScopeRunType, scenario.ScopeRunResult:
	default:
		return fmt.Errorf("unknown scopeType %q", adj.ScopeType)
	}

	switch adj.Type {
	case scenario.RemovePenaltyTaxonomy:
		if adj.TaxonomyCode == "" {
			return fmt.Errorf("REMOVE_PENALTY_TAXONOMY needs taxonomyCode")
		}
	case scenario.OverridePenaltySeconds, scenario.CleanTimeDelta:
	default:
		return fmt.Errorf("unknown adjustment type %q", adj.Type)
	}
	return nil
}

func (s *Server) handleListScenarios() (interface{}, error) {
	return map[string]interface{}{"scenarios": s.scenarios.List()}, nil
}

func (s *Server) handleCompareScenario(seasonID, scenarioID string) (interface{}, error) {
	if seasonID == "" || scenarioID == "" {
		return nil, fmt.Errorf("season_id and scenario_id are required")
	}

	sc, ok := s.scenarios.Get(scenarioID)
	if !ok {
		return nil, fmt.Errorf("scenario %s not found", scenarioID)
	}

	comps := s.store.Competitions(seasonID)
	comparison := report.CompareScenario(seasonID, comps, sc)

	s.sink.Record(audit.Key("scenario-comparison", seasonID, scenarioID), sc, comparison)

	return comparison, nil
}
