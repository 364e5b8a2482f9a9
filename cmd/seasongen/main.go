package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bigtednz/waterways-sub000/cmd/seasongen/engine"
	"github.com/bigtednz/waterways-sub000/internal/results"
)

func main() {
	season := flag.String("season", "2026", "Season ID to generate")
	competitions := flag.Int("competitions", 8, "Number of competitions in the season")
	runs := flag.Int("runs", 4, "Runs per boat class per competition")
	outDir := flag.String("out", "./cache", "Output directory for season cache files")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed (fixed seed gives reproducible seasons)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		SeasonID:     *season,
		Competitions: *competitions,
		RunsPerType:  *runs,
		Seed:         *seed,
	}

	fmt.Printf("Generating season %s (%d competitions, %d runs per class) to %s...\n",
		cfg.SeasonID, cfg.Competitions, cfg.RunsPerType, *outDir)

	comps := engine.Generate(cfg)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	store := results.NewStore()
	store.Append(cfg.SeasonID, comps)
	if err := store.Save(*outDir, cfg.SeasonID); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving season: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. Import with the 'import_season' tool (season_id=%s).\n", cfg.SeasonID)
}
