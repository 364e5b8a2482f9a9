package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Artifact is one recorded computation: its inputs, its outputs, and the
// engine version that produced them, so historical artifacts can be told
// apart from results of a later engine.
type Artifact struct {
	ID            string      `json:"id"`
	Key           string      `json:"key"`
	EngineVersion string      `json:"engineVersion"`
	CreatedAt     time.Time   `json:"createdAt"`
	Input         interface{} `json:"input,omitempty"`
	Output        interface{} `json:"output"`
}

// Key builds the conventional artifact key:
// "<computation>:seasonId=<id>[:scenarioId=<id>]".
func Key(computation, seasonID, scenarioID string) string {
	key := fmt.Sprintf("%s:seasonId=%s", computation, seasonID)
	if scenarioID != "" {
		key += ":scenarioId=" + scenarioID
	}
	return key
}

// Sink records computation artifacts as JSON files, fire-and-forget: a
// failed or slow write must never fail or delay the computation result
// already returned to the caller.
type Sink struct {
	dir     string
	version string
	wg      sync.WaitGroup
}

// NewSink creates a sink writing into dir, stamping artifacts with the given
// engine version. A nil sink is valid and records nothing.
func NewSink(dir, version string) *Sink {
	return &Sink{dir: dir, version: version}
}

// Record persists an artifact asynchronously. Marshalling happens on the
// calling goroutine so the caller's data can be mutated afterwards without
// racing the write.
func (s *Sink) Record(key string, input, output interface{}) {
	if s == nil || s.dir == "" {
		return
	}

	artifact := Artifact{
		ID:            uuid.NewString(),
		Key:           key,
		EngineVersion: s.version,
		CreatedAt:     time.Now().UTC(),
		Input:         input,
		Output:        output,
	}

	data, err := json.Marshal(artifact)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Audit artifact marshal failed")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		path := filepath.Join(s.dir, artifact.ID+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Audit artifact write failed")
		}
	}()
}

// Close waits for in-flight artifact writes to finish.
func (s *Sink) Close() {
	if s == nil {
		return
	}
	s.wg.Wait()
}
