package bank

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strings"
)

// Bank holds the immutable question catalog and answers filtered sampling
// queries over it. A Bank is never nil: load failures produce an empty bank,
// and callers are expected to check Len before starting a session.
type Bank struct {
	questions []Question
}

// New creates a Bank over an already-loaded question list.
func New(questions []Question) *Bank {
	return &Bank{questions: questions}
}

// Load reads the question catalog from path. On any failure (missing file,
// malformed JSON, schema violation) it returns an empty bank together with
// the error so the caller can report it; the bank itself stays usable.
// Entries whose correct_answer falls outside [1, len(options)] are dropped.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return New(nil), fmt.Errorf("read catalog: %w", err)
	}

	if err := validateCatalog(raw); err != nil {
		return New(nil), fmt.Errorf("validate catalog: %w", err)
	}

	var doc struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return New(nil), fmt.Errorf("decode catalog: %w", err)
	}

	kept := doc.Questions[:0]
	for _, q := range doc.Questions {
		if q.CorrectIndex < 1 || q.CorrectIndex > len(q.Options) {
			continue
		}
		kept = append(kept, q)
	}

	return New(kept), nil
}

// Filter narrows the catalog before sampling. All set fields must match
// (conjunctive); zero values mean "no constraint". String matches are
// case-insensitive.
type Filter struct {
	IDs        []string
	Topic      string
	Difficulty string
	Company    string
}

func (f Filter) matches(q *Question) bool {
	if len(f.IDs) > 0 {
		found := false
		for _, id := range f.IDs {
			if q.ID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Topic != "" && !strings.EqualFold(q.Topic, f.Topic) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(q.Difficulty, f.Difficulty) {
		return false
	}
	if f.Company != "" && !q.HasCompanyTag(f.Company) {
		return false
	}
	return true
}

// Sample returns min(count, matching) distinct questions drawn uniformly
// without replacement from the filtered catalog, in random order.
// An empty filtered set yields an empty (non-nil error free) result.
func (b *Bank) Sample(f Filter, count int) []Question {
	var filtered []Question
	for i := range b.questions {
		if f.matches(&b.questions[i]) {
			filtered = append(filtered, b.questions[i])
		}
	}
	if len(filtered) == 0 || count <= 0 {
		return nil
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	if count < len(filtered) {
		filtered = filtered[:count]
	}
	return filtered
}

// Random returns one uniformly random question, or false if the bank is empty.
func (b *Bank) Random() (Question, bool) {
	if len(b.questions) == 0 {
		return Question{}, false
	}
	return b.questions[rand.IntN(len(b.questions))], true
}

// Topics returns the sorted set of distinct topics.
func (b *Bank) Topics() []string {
	return b.distinct(func(q *Question) string { return q.Topic })
}

// Difficulties returns the sorted set of distinct difficulty labels.
func (b *Bank) Difficulties() []string {
	return b.distinct(func(q *Question) string { return q.Difficulty })
}

// CompanyTags returns the sorted set of distinct company tags.
func (b *Bank) CompanyTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for i := range b.questions {
		for _, t := range b.questions[i].CompanyTags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// TopicCount returns the number of questions for the given topic.
func (b *Bank) TopicCount(topic string) int {
	n := 0
	for i := range b.questions {
		if strings.EqualFold(b.questions[i].Topic, topic) {
			n++
		}
	}
	return n
}

// DifficultyDistribution returns question counts keyed by difficulty.
func (b *Bank) DifficultyDistribution() map[string]int {
	dist := make(map[string]int)
	for i := range b.questions {
		dist[b.questions[i].Difficulty]++
	}
	return dist
}

// Len returns the number of questions in the catalog.
func (b *Bank) Len() int {
	return len(b.questions)
}

func (b *Bank) distinct(key func(*Question) string) []string {
	seen := make(map[string]bool)
	var vals []string
	for i := range b.questions {
		v := key(&b.questions[i])
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	sort.Strings(vals)
	return vals
}
