package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store owns the persistent answer history for one backing file. The full
// history is read into memory on Open and rewritten wholesale on every
// Append. A single process owns the file at a time; concurrent writers are
// unsupported (last full write wins).
type Store struct {
	path    string
	cfg     Config
	results []Result
}

// Open loads the history at path. A missing, empty, or unparsable file
// yields an empty history rather than an error: the tool must stay usable
// even when past progress cannot be read.
func Open(path string, cfg Config) *Store {
	s := &Store{path: path, cfg: cfg}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var results []Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return s
	}
	s.results = results
	return s
}

// Append records a new result in memory, then rewrites the entire history
// file. A write failure is returned for reporting but the in-memory append
// is kept: losing a progress write must never abort a session in progress.
func (s *Store) Append(r Result) error {
	s.results = append(s.results, r)

	data, err := json.MarshalIndent(s.results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Results returns the full history in storage order. The returned slice is
// shared; callers must not mutate it.
func (s *Store) Results() []Result {
	return s.results
}

// Len returns the number of recorded results.
func (s *Store) Len() int {
	return len(s.results)
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}
