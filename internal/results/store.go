package results

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// Provider is the read contract the analytics layer consumes: fully hydrated
// competition and run records, keyed by season and run type. The persistence
// layer of the surrounding application owns the data; everything returned
// here is an independent clone the caller may hand to the overlay engine.
type Provider interface {
	Competitions(seasonID string) []Competition
	RunResultsByType(seasonID, runTypeCode string) []RunResult
}

// Store provides thread-safe, season-partitioned storage for competitions,
// with a JSONL cache for reload across restarts.
type Store struct {
	mu      sync.RWMutex
	seasons map[string][]Competition
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		seasons: make(map[string][]Competition),
	}
}

// Append adds competitions to a season, deduplicating by competition ID and
// keeping the season sorted by date, then ID for determinism.
func (s *Store) Append(seasonID string, comps []Competition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	season := s.seasons[seasonID]

	existing := make(map[string]bool, len(season))
	for _, c := range season {
		existing[c.ID] = true
	}

	added := 0
	for _, c := range comps {
		if existing[c.ID] {
			continue
		}
		existing[c.ID] = true
		season = append(season, c.Clone())
		added++
	}

	if added == 0 {
		return
	}

	sort.SliceStable(season, func(i, j int) bool {
		if !season[i].Date.Equal(season[j].Date) {
			return season[i].Date.Before(season[j].Date)
		}
		return season[i].ID < season[j].ID
	})

	s.seasons[seasonID] = season
}

// Competitions returns an independent clone of a season's competitions in
// chronological order. An unknown season yields nil.
func (s *Store) Competitions(seasonID string) []Competition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneCompetitions(s.seasons[seasonID])
}

// RunResultsByType returns clones of all runs of one run type across a
// season, in competition date order. Pass seasonID "" to search all seasons.
func (s *Store) RunResultsByType(seasonID, runTypeCode string) []RunResult {
	var comps []Competition
	if seasonID != "" {
		comps = s.Competitions(seasonID)
	} else {
		s.mu.RLock()
		ids := make([]string, 0, len(s.seasons))
		for id := range s.seasons {
			ids = append(ids, id)
		}
		s.mu.RUnlock()
		sort.Strings(ids)
		for _, id := range ids {
			comps = append(comps, s.Competitions(id)...)
		}
	}

	var runs []RunResult
	for _, comp := range comps {
		for _, run := range comp.RunResults {
			if run.RunTypeCode == runTypeCode {
				runs = append(runs, run)
			}
		}
	}
	return runs
}

// Seasons lists the season IDs currently held, sorted.
func (s *Store) Seasons() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.seasons))
	for id := range s.seasons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of competitions held for a season.
func (s *Store) Count(seasonID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seasons[seasonID])
}

// Load reads competitions from a season's JSONL cache file. A missing file
// is not an error, just an empty season.
func (s *Store) Load(cacheDir, seasonID string) error {
	path := filepath.Join(cacheDir, fmt.Sprintf("season-%s.jsonl", seasonID))
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open season cache: %w", err)
	}
	defer file.Close()

	var comps []Competition
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var c Competition
		if err := json.Unmarshal(scanner.Bytes(), &c); err != nil {
			log.Warn().Err(err).Str("season", seasonID).Msg("Skipping invalid JSON line in season cache")
			continue
		}
		comps = append(comps, c)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading season cache: %w", err)
	}

	log.Info().Str("season", seasonID).Int("count", len(comps)).Msg("Loaded competitions from cache")
	s.Append(seasonID, comps)
	return nil
}

// Save persists a season to its JSONL cache file, one competition per line,
// written to a temp file and renamed for atomicity.
func (s *Store) Save(cacheDir, seasonID string) error {
	s.mu.RLock()
	comps, ok := s.seasons[seasonID]
	s.mu.RUnlock()

	if !ok || len(comps) == 0 {
		return nil
	}

	path := filepath.Join(cacheDir, fmt.Sprintf("season-%s.jsonl", seasonID))
	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp season cache: %w", err)
	}

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)

	for _, c := range comps {
		if err := encoder.Encode(c); err != nil {
			file.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("failed to encode competition: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush season cache: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close season cache: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename season cache: %w", err)
	}

	log.Info().Str("season", seasonID).Int("count", len(comps)).Msg("Season saved to cache")
	return nil
}
