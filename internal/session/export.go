package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"devprep/internal/progress"
)

// ErrNoResults is returned by Export when the session recorded nothing.
// Callers report it as "nothing to export"; no file is written.
var ErrNoResults = errors.New("no results to export")

type exportSummary struct {
	SessionID       string  `json:"session_id"`
	Score           int     `json:"score"`
	Total           int     `json:"total"`
	Percentage      float64 `json:"percentage"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type exportDoc struct {
	SessionSummary exportSummary     `json:"session_summary"`
	Results        []progress.Result `json:"results"`
}

// Export writes the session summary and full result sequence as JSON to
// path. The file is write-only from this tool's perspective; it is never
// read back.
func (s *Session) Export(path string) error {
	if len(s.Results) == 0 {
		return ErrNoResults
	}

	sum := s.Summarize()
	doc := exportDoc{
		SessionSummary: exportSummary{
			SessionID:       sum.SessionID,
			Score:           sum.Score,
			Total:           sum.Total,
			Percentage:      sum.Percent,
			DurationSeconds: sum.Duration.Seconds(),
		},
		Results: s.Results,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
