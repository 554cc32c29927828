package bank

import (
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{ID: "linux-1", Topic: "linux", Difficulty: "easy", Prompt: "q1",
			Options: []string{"a", "b"}, CorrectIndex: 1, CompanyTags: []string{"faang"}},
		{ID: "linux-2", Topic: "linux", Difficulty: "medium", Prompt: "q2",
			Options: []string{"a", "b"}, CorrectIndex: 2},
		{ID: "linux-3", Topic: "Linux", Difficulty: "hard", Prompt: "q3",
			Options: []string{"a", "b"}, CorrectIndex: 1, CompanyTags: []string{"Startup"}},
		{ID: "git-1", Topic: "git", Difficulty: "easy", Prompt: "q4",
			Options: []string{"a", "b"}, CorrectIndex: 1},
	}
}

func TestSample_TopicCaseInsensitive(t *testing.T) {
	b := New(testQuestions())

	got := b.Sample(Filter{Topic: "LINUX"}, 10)
	if len(got) != 3 {
		t.Fatalf("Sample(topic=LINUX) returned %d questions, want 3", len(got))
	}
	for _, q := range got {
		if q.Topic != "linux" && q.Topic != "Linux" {
			t.Errorf("got topic %q, want a linux question", q.Topic)
		}
	}
}

func TestSample_CountClampedToFilteredSet(t *testing.T) {
	// 3 linux questions, 1 git question; asking for 5 linux yields all 3.
	b := New(testQuestions())

	got := b.Sample(Filter{Topic: "linux"}, 5)
	if len(got) != 3 {
		t.Fatalf("Sample returned %d questions, want 3", len(got))
	}

	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("duplicate question %s in sample", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSample_ConjunctiveFilters(t *testing.T) {
	b := New(testQuestions())

	got := b.Sample(Filter{Topic: "linux", Difficulty: "easy"}, 10)
	if len(got) != 1 || got[0].ID != "linux-1" {
		t.Fatalf("Sample(topic+difficulty) = %v, want [linux-1]", ids(got))
	}

	got = b.Sample(Filter{Topic: "linux", Company: "startup"}, 10)
	if len(got) != 1 || got[0].ID != "linux-3" {
		t.Fatalf("Sample(topic+company) = %v, want [linux-3]", ids(got))
	}

	got = b.Sample(Filter{Topic: "git", Difficulty: "hard"}, 10)
	if len(got) != 0 {
		t.Fatalf("Sample with no matches = %v, want empty", ids(got))
	}
}

func TestSample_IDSet(t *testing.T) {
	b := New(testQuestions())

	got := b.Sample(Filter{IDs: []string{"git-1", "linux-2", "missing"}}, 10)
	if len(got) != 2 {
		t.Fatalf("Sample(ids) returned %d questions, want 2", len(got))
	}
	for _, q := range got {
		if q.ID != "git-1" && q.ID != "linux-2" {
			t.Errorf("unexpected question %s in id-filtered sample", q.ID)
		}
	}
}

func TestSample_EmptyBank(t *testing.T) {
	b := New(nil)
	if got := b.Sample(Filter{}, 5); len(got) != 0 {
		t.Fatalf("Sample on empty bank = %v, want empty", ids(got))
	}
}

func TestSample_SubsetIsUniformlyDrawn(t *testing.T) {
	b := New(testQuestions())

	// Drawing 2 of 4 many times should eventually pick every question.
	picked := make(map[string]bool)
	for i := 0; i < 200; i++ {
		for _, q := range b.Sample(Filter{}, 2) {
			picked[q.ID] = true
		}
	}
	if len(picked) != 4 {
		t.Errorf("200 draws of 2/4 picked %d distinct questions, want 4", len(picked))
	}
}

func TestRandom_EmptyBank(t *testing.T) {
	b := New(nil)
	if _, ok := b.Random(); ok {
		t.Error("Random on empty bank reported ok")
	}
}

func TestTopicsAndDifficulties_Sorted(t *testing.T) {
	b := New(testQuestions())

	topics := b.Topics()
	// Case-preserving distinct: "Linux", "git", "linux".
	if len(topics) != 3 {
		t.Fatalf("Topics() = %v, want 3 entries", topics)
	}
	for i := 1; i < len(topics); i++ {
		if topics[i-1] > topics[i] {
			t.Errorf("Topics() not sorted: %v", topics)
		}
	}

	diffs := b.Difficulties()
	if len(diffs) != 3 {
		t.Errorf("Difficulties() = %v, want [easy hard medium]", diffs)
	}
}

func TestTopicCount_CaseInsensitive(t *testing.T) {
	b := New(testQuestions())
	if n := b.TopicCount("linux"); n != 3 {
		t.Errorf("TopicCount(linux) = %d, want 3", n)
	}
	if n := b.TopicCount("terraform"); n != 0 {
		t.Errorf("TopicCount(terraform) = %d, want 0", n)
	}
}

func TestDifficultyDistribution(t *testing.T) {
	b := New(testQuestions())
	dist := b.DifficultyDistribution()
	if dist["easy"] != 2 || dist["medium"] != 1 || dist["hard"] != 1 {
		t.Errorf("DifficultyDistribution() = %v", dist)
	}
}

func ids(questions []Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}
