// Package store is the in-memory cache of normalized trend payloads,
// the credit usage counter, and the durable snapshot that carries both
// (plus any derived artifacts) across process restarts.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/contentcompass/trendcompass/internal/trend"
)

// Artifact slot names used by the planner.
const (
	ArtifactWeeklyPlan = "weekly_plan"
	ArtifactBrief      = "generated_brief"
)

// snapshot is the on-disk form: the whole cache, the usage counter, and
// any derived artifacts, rewritten wholesale after each mutation.
type snapshot struct {
	Cache       map[string]trend.Envelope  `json:"cache"`
	CreditsUsed int                        `json:"credits_used"`
	Artifacts   map[string]json.RawMessage `json:"artifacts,omitempty"`
	Timestamp   time.Time                  `json:"timestamp"`
}

// Store holds cached payloads and the usage counter. The session facade
// is the single logical writer; the mutex only guards against incidental
// concurrent reads (e.g. a spinner goroutine rendering while a fetch
// completes).
type Store struct {
	mu        sync.RWMutex
	path      string
	entries   map[string]trend.Envelope
	usage     int
	artifacts map[string]json.RawMessage
}

// Open loads the snapshot at path if one exists and is well-formed.
// A missing or corrupt snapshot starts empty; that is not an error.
func Open(path string) *Store {
	s := &Store{
		path:      path,
		entries:   make(map[string]trend.Envelope),
		artifacts: make(map[string]json.RawMessage),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return
	}
	if snap.Cache != nil {
		s.entries = snap.Cache
	}
	if snap.Artifacts != nil {
		s.artifacts = snap.Artifacts
	}
	s.usage = snap.CreditsUsed
}

// Get returns the cached payload for a fingerprint.
func (s *Store) Get(fp string) (trend.Envelope, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	env, ok := s.entries[fp]
	return env, ok
}

// Put stores a payload, overwriting any existing entry.
func (s *Store) Put(fp string, env trend.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[fp] = env
}

// Invalidate removes every entry whose fingerprint matches the predicate
// and returns how many were removed.
func (s *Store) Invalidate(pred func(fp string) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for fp := range s.entries {
		if pred(fp) {
			delete(s.entries, fp)
			removed++
		}
	}
	return removed
}

// InvalidateCategory removes every entry belonging to a category.
func (s *Store) InvalidateCategory(category string) int {
	prefix := category + ":"
	return s.Invalidate(func(fp string) bool {
		return strings.HasPrefix(fp, prefix)
	})
}

// Reset clears the cache and zeroes the usage counter, the side effect
// of switching modes or clearing the whole cache.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]trend.Envelope)
	s.usage = 0
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Fingerprints returns every cached fingerprint, unordered.
func (s *Store) Fingerprints() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fps := make([]string, 0, len(s.entries))
	for fp := range s.entries {
		fps = append(fps, fp)
	}
	return fps
}

// Charge adds cost to the usage counter. Called by the facade exactly
// once per successful remote fetch and never otherwise.
func (s *Store) Charge(cost int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage += cost
}

// Usage returns the cumulative credits charged since the last reset.
func (s *Store) Usage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usage
}

// SetArtifact stores a derived artifact (plan, brief) under a named slot.
func (s *Store) SetArtifact(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding artifact %s: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[name] = data
	return nil
}

// Artifact decodes a stored artifact into out. Returns false if the slot
// is empty.
func (s *Store) Artifact(name string, out any) bool {
	s.mu.RLock()
	data, ok := s.artifacts[name]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// ClearArtifact removes a stored artifact.
func (s *Store) ClearArtifact(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.artifacts, name)
}

// Persist rewrites the whole snapshot. Durability is best-effort: the
// error is returned for logging but in-memory state is already correct,
// so callers never fail the operation that triggered the write.
func (s *Store) Persist() error {
	s.mu.RLock()
	snap := snapshot{
		Cache:       s.entries,
		CreditsUsed: s.usage,
		Timestamp:   time.Now(),
	}
	if len(s.artifacts) > 0 {
		snap.Artifacts = s.artifacts
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshot removes the durable file, used by a full app reset.
func (s *Store) DeleteSnapshot() {
	_ = os.Remove(s.path)
}
