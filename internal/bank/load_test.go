package bank

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validCatalog = `{
  "questions": [
    {
      "id": "q1", "topic": "linux", "difficulty": "easy",
      "question": "prompt one",
      "options": ["a", "b", "c"],
      "correct_answer": 2,
      "explanation": "because",
      "scenario": "late night page",
      "company_tags": ["faang"],
      "real_world_context": "happens weekly"
    },
    {
      "id": "q2", "topic": "git", "difficulty": "medium",
      "question": "prompt two",
      "options": ["a", "b"],
      "correct_answer": 1,
      "explanation": ""
    }
  ]
}`

func TestLoad_ValidCatalog(t *testing.T) {
	b, err := Load(writeCatalog(t, validCatalog))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}

	got := b.Sample(Filter{IDs: []string{"q1"}}, 1)
	if len(got) != 1 {
		t.Fatal("q1 not found")
	}
	q := got[0]
	if q.Prompt != "prompt one" || q.CorrectIndex != 2 || q.Scenario != "late night page" {
		t.Errorf("q1 decoded incorrectly: %+v", q)
	}
	if !q.HasCompanyTag("FAANG") {
		t.Error("company tag not matched case-insensitively")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("expected error for missing catalog")
	}
	if b == nil || b.Len() != 0 {
		t.Error("missing catalog must yield a usable empty bank")
	}
	if got := b.Sample(Filter{Topic: "linux"}, 5); len(got) != 0 {
		t.Error("empty bank must answer queries with empty results")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	b, err := Load(writeCatalog(t, "{not json"))
	if err == nil {
		t.Error("expected error for malformed catalog")
	}
	if b.Len() != 0 {
		t.Error("malformed catalog must yield an empty bank")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	// options has fewer than 2 entries.
	doc := `{"questions": [{
		"id": "q1", "topic": "t", "difficulty": "easy",
		"question": "p", "options": ["only"], "correct_answer": 1,
		"explanation": ""
	}]}`
	b, err := Load(writeCatalog(t, doc))
	if err == nil {
		t.Error("expected schema validation error")
	}
	if b.Len() != 0 {
		t.Error("schema-invalid catalog must yield an empty bank")
	}
}

func TestLoad_MissingRequiredField(t *testing.T) {
	doc := `{"questions": [{
		"topic": "t", "difficulty": "easy",
		"question": "p", "options": ["a", "b"], "correct_answer": 1,
		"explanation": ""
	}]}`
	b, err := Load(writeCatalog(t, doc))
	if err == nil {
		t.Error("expected schema validation error for missing id")
	}
	if b.Len() != 0 {
		t.Error("catalog missing required fields must yield an empty bank")
	}
}

func TestLoad_DropsOutOfRangeCorrectAnswer(t *testing.T) {
	doc := `{"questions": [
		{"id": "ok", "topic": "t", "difficulty": "easy",
		 "question": "p", "options": ["a", "b"], "correct_answer": 2, "explanation": ""},
		{"id": "bad", "topic": "t", "difficulty": "easy",
		 "question": "p", "options": ["a", "b"], "correct_answer": 3, "explanation": ""}
	]}`
	b, err := Load(writeCatalog(t, doc))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (out-of-range entry dropped)", b.Len())
	}
	if got := b.Sample(Filter{IDs: []string{"bad"}}, 1); len(got) != 0 {
		t.Error("entry with out-of-range correct_answer was kept")
	}
}
