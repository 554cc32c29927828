package progress

import (
	"path/filepath"
	"testing"
	"time"
)

// memStore builds an in-memory store without touching disk.
func memStore(cfg Config, results ...Result) *Store {
	s := &Store{path: filepath.Join("unused", "progress.json"), cfg: cfg}
	s.results = results
	return s
}

func res(id, topic, difficulty string, correct bool) Result {
	return Result{
		QuestionID: id,
		Topic:      topic,
		Difficulty: difficulty,
		Correct:    correct,
		Timestamp:  time.Now(),
	}
}

func TestWeakAreas_MinAttemptsExcludes(t *testing.T) {
	// aws: 2 attempts (1 correct) — below threshold, excluded even at 50%.
	// k8s: 4 attempts (1 correct) — included at 25%.
	s := memStore(DefaultConfig(),
		res("a1", "aws", "easy", true),
		res("a2", "aws", "easy", false),
		res("k1", "k8s", "easy", false),
		res("k2", "k8s", "easy", true),
		res("k3", "k8s", "easy", false),
		res("k4", "k8s", "easy", false),
	)

	weak := s.WeakAreas()
	if len(weak) != 1 {
		t.Fatalf("WeakAreas() = %v, want exactly [k8s]", weak)
	}
	if weak[0].Topic != "k8s" {
		t.Errorf("weak topic = %q, want k8s", weak[0].Topic)
	}
	if weak[0].Rate != 0.25 {
		t.Errorf("weak rate = %v, want 0.25", weak[0].Rate)
	}
}

func TestWeakAreas_ZeroRateBelowThresholdStillExcluded(t *testing.T) {
	s := memStore(DefaultConfig(),
		res("t1", "terraform", "easy", false),
		res("t2", "terraform", "easy", false),
	)
	if weak := s.WeakAreas(); len(weak) != 0 {
		t.Errorf("WeakAreas() = %v, want empty for 2 attempts at 0%%", weak)
	}
}

func TestWeakAreas_AscendingWithStableTies(t *testing.T) {
	cfg := Config{MinAttempts: 3, MaxWeakAreas: 5, RecentWindow: 10}
	s := memStore(cfg,
		// git first seen, 1/3. Then docker 1/3. Then linux 3/3.
		res("g1", "git", "easy", true),
		res("g2", "git", "easy", false),
		res("g3", "git", "easy", false),
		res("d1", "docker", "easy", false),
		res("d2", "docker", "easy", false),
		res("d3", "docker", "easy", true),
		res("l1", "linux", "easy", true),
		res("l2", "linux", "easy", true),
		res("l3", "linux", "easy", true),
	)

	weak := s.WeakAreas()
	if len(weak) != 3 {
		t.Fatalf("WeakAreas() returned %d topics, want 3", len(weak))
	}
	// git and docker tie at 1/3; git was seen first and must rank first.
	if weak[0].Topic != "git" || weak[1].Topic != "docker" || weak[2].Topic != "linux" {
		t.Errorf("WeakAreas() order = [%s %s %s], want [git docker linux]",
			weak[0].Topic, weak[1].Topic, weak[2].Topic)
	}
}

func TestWeakAreas_CappedAtMax(t *testing.T) {
	cfg := Config{MinAttempts: 1, MaxWeakAreas: 2, RecentWindow: 10}
	s := memStore(cfg,
		res("1", "a", "easy", false),
		res("2", "b", "easy", false),
		res("3", "c", "easy", false),
	)
	if weak := s.WeakAreas(); len(weak) != 2 {
		t.Errorf("WeakAreas() returned %d topics, want cap of 2", len(weak))
	}
}

func TestFailedQuestions_Deduplicated(t *testing.T) {
	s := memStore(DefaultConfig(),
		res("q1", "linux", "easy", false),
		res("q1", "linux", "easy", false),
		res("q2", "git", "easy", true),
		res("q3", "git", "easy", false),
	)

	failed := s.FailedQuestions()
	if len(failed) != 2 {
		t.Fatalf("FailedQuestions() = %v, want 2 distinct ids", failed)
	}
	seen := map[string]bool{}
	for _, id := range failed {
		seen[id] = true
	}
	if !seen["q1"] || !seen["q3"] || seen["q2"] {
		t.Errorf("FailedQuestions() = %v, want {q1, q3}", failed)
	}
}

func TestTopicAndDifficultyStats(t *testing.T) {
	s := memStore(DefaultConfig(),
		res("q1", "linux", "easy", true),
		res("q2", "linux", "hard", false),
		res("q3", "git", "easy", true),
	)

	topics := s.TopicStats()
	if topics["linux"] != (Tally{Correct: 1, Total: 2}) {
		t.Errorf("TopicStats()[linux] = %+v", topics["linux"])
	}
	if topics["git"] != (Tally{Correct: 1, Total: 1}) {
		t.Errorf("TopicStats()[git] = %+v", topics["git"])
	}

	diffs := s.DifficultyStats()
	if diffs["easy"] != (Tally{Correct: 2, Total: 2}) {
		t.Errorf("DifficultyStats()[easy] = %+v", diffs["easy"])
	}
	if diffs["hard"] != (Tally{Correct: 0, Total: 1}) {
		t.Errorf("DifficultyStats()[hard] = %+v", diffs["hard"])
	}
}

func TestOverallStats_Empty(t *testing.T) {
	s := memStore(DefaultConfig())
	stats := s.OverallStats()
	if stats.TotalAttempted != 0 || stats.SuccessRate != 0 || stats.RecentSuccessRate != 0 {
		t.Errorf("OverallStats() on empty history = %+v, want zeros", stats)
	}
}

func TestOverallStats_RecentWindow(t *testing.T) {
	var results []Result
	// 10 old incorrect answers, then 10 recent correct ones.
	for i := 0; i < 10; i++ {
		results = append(results, res("old", "linux", "easy", false))
	}
	for i := 0; i < 10; i++ {
		results = append(results, res("new", "linux", "easy", true))
	}
	s := memStore(DefaultConfig(), results...)

	stats := s.OverallStats()
	if stats.TotalAttempted != 20 || stats.TotalCorrect != 10 {
		t.Errorf("totals = %d/%d, want 10/20", stats.TotalCorrect, stats.TotalAttempted)
	}
	if stats.SuccessRate != 0.5 {
		t.Errorf("SuccessRate = %v, want 0.5", stats.SuccessRate)
	}
	if stats.RecentSuccessRate != 1.0 {
		t.Errorf("RecentSuccessRate = %v, want 1.0 over the last 10", stats.RecentSuccessRate)
	}
}

func TestOverallStats_ShortHistoryRecentEqualsOverall(t *testing.T) {
	s := memStore(DefaultConfig(),
		res("q1", "linux", "easy", true),
		res("q2", "linux", "easy", false),
		res("q3", "linux", "easy", true),
	)

	stats := s.OverallStats()
	if stats.RecentSuccessRate != stats.SuccessRate {
		t.Errorf("recent %v != overall %v with 3 results", stats.RecentSuccessRate, stats.SuccessRate)
	}
}
