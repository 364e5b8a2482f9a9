package scenario

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

// Store holds scenario definitions by ID, with a JSONL cache so defined
// scenarios survive restarts. Adjustment order within a scenario is
// preserved verbatim; it is semantically significant.
type Store struct {
	mu        sync.RWMutex
	scenarios map[string]Scenario
}

// NewStore creates an empty scenario Store.
func NewStore() *Store {
	return &Store{
		scenarios: make(map[string]Scenario),
	}
}

// Put inserts or replaces a scenario definition.
func (s *Store) Put(sc Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios[sc.ID] = sc
}

// Get returns the scenario for an ID.
func (s *Store) Get(id string) (Scenario, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.scenarios[id]
	return sc, ok
}

// List returns all scenarios sorted by ID.
func (s *Store) List() []Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Scenario, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Load reads scenario definitions from the cache file. Missing cache is not
// an error.
func (s *Store) Load(cacheDir string) error {
	path := filepath.Join(cacheDir, "scenarios.jsonl")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open scenario cache: %w", err)
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var sc Scenario
		if err := json.Unmarshal(scanner.Bytes(), &sc); err != nil {
			log.Warn().Err(err).Msg("Skipping invalid JSON line in scenario cache")
			continue
		}
		s.Put(sc)
		count++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading scenario cache: %w", err)
	}

	log.Info().Int("count", count).Msg("Loaded scenarios from cache")
	return nil
}

// Save persists all scenarios to the cache file via temp file and rename.
func (s *Store) Save(cacheDir string) error {
	scenarios := s.List()
	if len(scenarios) == 0 {
		return nil
	}

	path := filepath.Join(cacheDir, "scenarios.jsonl")
	tmpPath := path + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp scenario cache: %w", err)
	}

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)

	for _, sc := range scenarios {
		if err := encoder.Encode(sc); err != nil {
			file.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("failed to encode scenario: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush scenario cache: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close scenario cache: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename scenario cache: %w", err)
	}

	return nil
}
