package mcp

import (
	"fmt"

	"github.com/bigtednz/waterways-sub000/internal/audit"
	"github.com/bigtednz/waterways-sub000/internal/report"
	"github.com/bigtednz/waterways-sub000/internal/stats"
	"github.com/bigtednz/waterways-sub000/internal/visuals"
)

func (s *Server) handleCompetitionTrends(seasonID string) (interface{}, error) {
	if seasonID == "" {
		return nil, fmt.Errorf("season_id is required")
	}

	comps := s.store.Competitions(seasonID)
	trends := stats.CompetitionTrends(comps)

	s.sink.Record(audit.Key("competition-trends", seasonID, ""), nil, trends)

	result := map[string]interface{}{
		"engineVersion": stats.EngineVersion,
		"seasonId":      seasonID,
		"trends":        trends,
	}
	if s.cfg.EnableMermaidCharts {
		if chart := visuals.GenerateTrendChart(trends); chart != "" {
			result["chart"] = chart
		}
	}
	return result, nil
}

func (s *Server) handleRunDiagnostics(seasonID, runTypeCode string, windowSize int) (interface{}, error) {
	if seasonID == "" || runTypeCode == "" {
		return nil, fmt.Errorf("season_id and run_type_code are required")
	}
	if windowSize <= 0 {
		windowSize = s.cfg.DefaultWindowSize
	}

	runs := s.store.RunResultsByType(seasonID, runTypeCode)
	diag, err := stats.ComputeRunDiagnostics(runs, windowSize)
	if err != nil {
		return nil, fmt.Errorf("no %s runs recorded for season %s: %w", runTypeCode, seasonID, err)
	}

	s.sink.Record(audit.Key("run-diagnostics", seasonID, ""), map[string]interface{}{
		"runTypeCode": runTypeCode,
		"windowSize":  windowSize,
	}, diag)

	return map[string]interface{}{
		"engineVersion": stats.EngineVersion,
		"seasonId":      seasonID,
		"diagnostics":   diag,
	}, nil
}

func (s *Server) handlePenaltyDrivers(seasonID string) (interface{}, error) {
	if seasonID == "" {
		return nil, fmt.Errorf("season_id is required")
	}

	comps := s.store.Competitions(seasonID)
	drivers := stats.PenaltyDrivers(comps)

	s.sink.Record(audit.Key("penalty-drivers", seasonID, ""), nil, drivers)

	result := map[string]interface{}{
		"engineVersion": stats.EngineVersion,
		"seasonId":      seasonID,
		"drivers":       drivers,
	}
	if s.cfg.EnableMermaidCharts {
		if chart := visuals.GenerateDriverChart(drivers); chart != "" {
			result["chart"] = chart
		}
	}
	return result, nil
}

func (s *Server) handleRecoverableTime(seasonID, runTypeCode string) (interface{}, error) {
	if seasonID == "" || runTypeCode == "" {
		return nil, fmt.Errorf("season_id and run_type_code are required")
	}

	runs := s.store.RunResultsByType(seasonID, runTypeCode)
	estimate := stats.EstimateRecoverableTime(runs)

	s.sink.Record(audit.Key("recoverable-time", seasonID, ""), map[string]interface{}{
		"runTypeCode": runTypeCode,
	}, estimate)

	return map[string]interface{}{
		"engineVersion": stats.EngineVersion,
		"seasonId":      seasonID,
		"estimate":      estimate,
	}, nil
}

func (s *Server) handleSeasonReport(seasonID string) (interface{}, error) {
	if seasonID == "" {
		return nil, fmt.Errorf("season_id is required")
	}

	rep := report.BuildFor(s.store, seasonID)

	s.sink.Record(audit.Key("season-report", seasonID, ""), nil, rep)

	result := map[string]interface{}{"report": rep}
	if s.cfg.EnableMermaidCharts {
		if chart := visuals.GenerateTrendChart(rep.Trends); chart != "" {
			result["trendChart"] = chart
		}
		if chart := visuals.GenerateDriverChart(rep.Drivers); chart != "" {
			result["driverChart"] = chart
		}
	}
	return result, nil
}
