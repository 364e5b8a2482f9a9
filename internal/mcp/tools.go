package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "import_season",
				"description": "Load a season's competition results from the local cache into memory. Guidance: run this before any analytics tool for that season.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"season_id": map[string]interface{}{"type": "string", "description": "Season identifier, e.g. 2026"},
					},
					"required": []string{"season_id"},
				},
			},
			map[string]interface{}{
				"name":        "list_seasons",
				"description": "List seasons currently loaded, with competition counts.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "list_competitions",
				"description": "List a season's competitions in chronological order, with run counts.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"season_id": map[string]interface{}{"type": "string"},
					},
					"required": []string{"season_id"},
				},
			},
			map[string]interface{}{
				"name":        "competition_trends",
				"description": "Per-competition trend summary for a season: median clean time, penalty load, penalty rate, consistency IQR, run count.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"season_id": map[string]interface{}{"type": "string"},
					},
					"required": []string{"season_id"},
				},
			},
			map[string]interface{}{
				"name":        "run_diagnostics",
				"description": "Rolling-window diagnostics (median and Q1/Q3 clean-time band) for one run type across a season. Requires at least one run of that type.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"season_id":     map[string]interface{}{"type": "string"},
						"run_type_code": map[string]interface{}{"type": "string", "description": "Run type code, e.g. K1"},
						"window_size":   map[string]interface{}{"type": "integer", "description": "Trailing window size (default 3)"},
					},
					"required": []string{"season_id", "run_type_code"},
				},
			},
			map[string]interface{}{
				"name":        "penalty_drivers",
				"description": "Penalty attribution by run type for a season, worst offenders first, with a per-taxonomy breakdown.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"season_id": map[string]interface{}{"type": "string"},
					},
					"required": []string{"season_id"},
				},
			},
			map[string]interface{}{
				"name":        "recoverable_time",
				"description": "Recoverable-time estimate for one run type: penalty seconds plus half the clean-time IQR (coaching heuristic).",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"season_id":     map[string]interface{}{"type": "string"},
						"run_type_code": map[string]interface{}{"type": "string"},
					},
					"required": []string{"season_id", "run_type_code"},
				},
			},
			map[string]interface{}{
				"name":        "season_report",
				"description": "Full season report: trends, penalty drivers, and per-run-type recoverable estimates in one pass.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"season_id": map[string]interface{}{"type": "string"},
					},
					"required": []string{"season_id"},
				},
			},
			map[string]interface{}{
				"name":        "define_scenario",
				"description": "Store a what-if scenario: an ordered list of adjustments (REMOVE_PENALTY_TAXONOMY, OVERRIDE_PENALTY_SECONDS, CLEAN_TIME_DELTA) scoped to SEASON, COMPETITION, RUN_TYPE, or RUN_RESULT. Order matters.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"scenario_id": map[string]interface{}{"type": "string"},
						"name":        map[string]interface{}{"type": "string"},
						"adjustments": map[string]interface{}{
							"type":        "array",
							"description": "Ordered adjustment objects with scopeType, scopeId (omit for all), type, and payload fields",
							"items":       map[string]interface{}{"type": "object"},
						},
					},
					"required": []string{"scenario_id", "adjustments"},
				},
			},
			map[string]interface{}{
				"name":        "list_scenarios",
				"description": "List stored what-if scenarios.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "compare_scenario",
				"description": "Recompute a season's full report under a stored scenario overlay and return baseline vs. scenario side by side. The baseline data is never modified.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"season_id":   map[string]interface{}{"type": "string"},
						"scenario_id": map[string]interface{}{"type": "string"},
					},
					"required": []string{"season_id", "scenario_id"},
				},
			},
		},
	}
}
