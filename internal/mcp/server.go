package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/bigtednz/waterways-sub000/internal/audit"
	"github.com/bigtednz/waterways-sub000/internal/config"
	"github.com/bigtednz/waterways-sub000/internal/results"
	"github.com/bigtednz/waterways-sub000/internal/scenario"
)

// JSONRPCRequest represents a standard MCP/JSON-RPC request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents a standard MCP/JSON-RPC response.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Server holds the state for the MCP server.
type Server struct {
	cfg       *config.AppConfig
	store     *results.Store
	scenarios *scenario.Store
	sink      *audit.Sink
}

// NewServer creates a new MCP server over the given stores and sink.
func NewServer(cfg *config.AppConfig, store *results.Store, scenarios *scenario.Store, sink *audit.Sink) *Server {
	return &Server{
		cfg:       cfg,
		store:     store,
		scenarios: scenarios,
		sink:      sink,
	}
}

// Serve starts the JSON-RPC loop over Stdio.
func (s *Server) Serve() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "waterways",
				"version": "0.1.0",
			},
		}
	case "tools/list":
		result = s.listTools()
	case "tools/call":
		result, errRes = s.callTool(req.Params)
	default:
		errRes = map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method %s not found", req.Method),
		}
	}

	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	}

	out, _ := json.Marshal(resp)
	fmt.Fprintf(os.Stdout, "%s\n", out)
}

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	var data interface{}
	var err error

	switch call.Name {
	case "import_season":
		data, err = s.handleImportSeason(asString(call.Arguments["season_id"]))
	case "list_seasons":
		data, err = s.handleListSeasons()
	case "list_competitions":
		data, err = s.handleListCompetitions(asString(call.Arguments["season_id"]))
	case "competition_trends":
		data, err = s.handleCompetitionTrends(asString(call.Arguments["season_id"]))
	case "run_diagnostics":
		data, err = s.handleRunDiagnostics(
			asString(call.Arguments["season_id"]),
			asString(call.Arguments["run_type_code"]),
			asInt(call.Arguments["window_size"]),
		)
	case "penalty_drivers":
		data, err = s.handlePenaltyDrivers(asString(call.Arguments["season_id"]))
	case "recoverable_time":
		data, err = s.handleRecoverableTime(
			asString(call.Arguments["season_id"]),
			asString(call.Arguments["run_type_code"]),
		)
	case "season_report":
		data, err = s.handleSeasonReport(asString(call.Arguments["season_id"]))
	case "define_scenario":
		data, err = s.handleDefineScenario(call.Arguments)
	case "list_scenarios":
		data, err = s.handleListScenarios()
	case "compare_scenario":
		data, err = s.handleCompareScenario(
			asString(call.Arguments["season_id"]),
			asString(call.Arguments["scenario_id"]),
		)
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}
