package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bigtednz/waterways-sub000/internal/audit"
	"github.com/bigtednz/waterways-sub000/internal/config"
	"github.com/bigtednz/waterways-sub000/internal/logging"
	"github.com/bigtednz/waterways-sub000/internal/mcp"
	"github.com/bigtednz/waterways-sub000/internal/results"
	"github.com/bigtednz/waterways-sub000/internal/scenario"
	"github.com/bigtednz/waterways-sub000/internal/stats"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	resultStore   *results.Store
	scenarioStore *scenario.Store
)

var rootCmd = &cobra.Command{
	Use:   "waterways",
	Short: "Waterways is a results analytics MCP server for timed, penalty-scored competitions",
	Long: `A coaching analytics server for penalty-scored paddle sports: competition trends,
rolling run diagnostics, penalty-driver attribution, recoverable-time estimates,
and what-if scenario overlays over the historical record.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		resultStore = results.NewStore()
		scenarioStore = scenario.NewStore()
		if err := scenarioStore.Load(cfg.CacheDir); err != nil {
			log.Warn().Err(err).Msg("Failed to load scenario cache")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("engine", stats.EngineVersion).
			Msg("Waterways starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		var sink *audit.Sink
		if cfg.EnableAuditSink {
			sink = audit.NewSink(cfg.ArtifactDir, stats.EngineVersion)
			defer sink.Close()
		}

		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(cfg, resultStore, scenarioStore, sink)
		if err := server.Serve(); err != nil {
			log.Error().Err(err).Msg("Stdio loop terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
