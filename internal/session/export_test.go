package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExport_EmptySession(t *testing.T) {
	s := New(nil, DefaultThresholds())
	path := filepath.Join(t.TempDir(), "export.json")

	err := s.Export(path)
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("Export on empty session = %v, want ErrNoResults", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("empty export must not create a file")
	}
}

func TestExport_WritesSummaryAndResults(t *testing.T) {
	s, _ := trackedSession(t)

	p := s.Present(testQuestion())
	s.Submit(p, p.CorrectPos)
	p = s.Present(testQuestion())
	s.Submit(p, p.CorrectPos%len(p.Options)+1)

	path := filepath.Join(t.TempDir(), "export.json")
	if err := s.Export(path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Summary struct {
			SessionID  string  `json:"session_id"`
			Score      int     `json:"score"`
			Total      int     `json:"total"`
			Percentage float64 `json:"percentage"`
		} `json:"session_summary"`
		Results []struct {
			QuestionID string `json:"question_id"`
			Correct    bool   `json:"correct"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if doc.Summary.SessionID != s.ID {
		t.Errorf("session_id = %q, want %q", doc.Summary.SessionID, s.ID)
	}
	if doc.Summary.Score != 1 || doc.Summary.Total != 2 {
		t.Errorf("score/total = %d/%d, want 1/2", doc.Summary.Score, doc.Summary.Total)
	}
	if doc.Summary.Percentage != 50 {
		t.Errorf("percentage = %v, want 50", doc.Summary.Percentage)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("exported %d results, want 2", len(doc.Results))
	}
	if doc.Results[0].QuestionID != "q1" || !doc.Results[0].Correct || doc.Results[1].Correct {
		t.Errorf("exported results = %+v", doc.Results)
	}
}
