package bank

import "strings"

// Question is a single catalog entry. Questions are loaded once at startup
// and shared read-only; nothing mutates them after Load returns.
type Question struct {
	ID         string   `json:"id"`
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
	Prompt     string   `json:"question"`
	Options    []string `json:"options"`

	// CorrectIndex is the 1-based position of the correct answer in Options,
	// as stored in the catalog (before any per-presentation shuffle).
	CorrectIndex int `json:"correct_answer"`

	Explanation string `json:"explanation"`

	// Scenario is an optional narrative shown before the prompt.
	Scenario string `json:"scenario,omitempty"`

	// CompanyTags mark questions as typical for a company style
	// (e.g. faang, startup, enterprise).
	CompanyTags []string `json:"company_tags,omitempty"`

	// RealWorldContext is optional extra color shown after answering.
	RealWorldContext string `json:"real_world_context,omitempty"`
}

// HasCompanyTag reports whether the question carries the given tag,
// compared case-insensitively.
func (q *Question) HasCompanyTag(tag string) bool {
	for _, t := range q.CompanyTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
