package progress

import "sort"

// Tally is a correct/total counter pair.
type Tally struct {
	Correct int
	Total   int
}

// Rate returns Correct/Total, or 0 when nothing was attempted.
func (t Tally) Rate() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total)
}

// WeakArea is a topic whose historical success rate ranks among the lowest.
type WeakArea struct {
	Topic    string
	Rate     float64
	Attempts int
}

// WeakAreas groups the history by topic and returns up to MaxWeakAreas
// topics ordered ascending by success rate. Topics with fewer than
// MinAttempts results are excluded entirely, even at a 0% rate. Ties keep
// first-seen topic order.
func (s *Store) WeakAreas() []WeakArea {
	stats := make(map[string]*Tally)
	var order []string
	for _, r := range s.results {
		t := stats[r.Topic]
		if t == nil {
			t = &Tally{}
			stats[r.Topic] = t
			order = append(order, r.Topic)
		}
		t.Total++
		if r.Correct {
			t.Correct++
		}
	}

	var weak []WeakArea
	for _, topic := range order {
		t := stats[topic]
		if t.Total < s.cfg.MinAttempts {
			continue
		}
		weak = append(weak, WeakArea{Topic: topic, Rate: t.Rate(), Attempts: t.Total})
	}

	sort.SliceStable(weak, func(i, j int) bool { return weak[i].Rate < weak[j].Rate })
	if len(weak) > s.cfg.MaxWeakAreas {
		weak = weak[:s.cfg.MaxWeakAreas]
	}
	return weak
}

// FailedQuestions returns the deduplicated ids of questions with at least
// one incorrect result. Order is unspecified.
func (s *Store) FailedQuestions() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range s.results {
		if !r.Correct && !seen[r.QuestionID] {
			seen[r.QuestionID] = true
			ids = append(ids, r.QuestionID)
		}
	}
	return ids
}

// TopicStats returns correct/total tallies grouped by topic over the full
// history, with no attempt thresholding.
func (s *Store) TopicStats() map[string]Tally {
	return s.groupBy(func(r *Result) string { return r.Topic })
}

// DifficultyStats returns correct/total tallies grouped by difficulty.
func (s *Store) DifficultyStats() map[string]Tally {
	return s.groupBy(func(r *Result) string { return r.Difficulty })
}

// OverallStats summarizes the whole history.
type OverallStats struct {
	TotalAttempted    int
	TotalCorrect      int
	SuccessRate       float64
	RecentSuccessRate float64
}

// OverallStats computes totals plus a recent rate over the trailing
// RecentWindow results (fewer if the history is shorter). All rates are 0
// when the denominator is 0.
func (s *Store) OverallStats() OverallStats {
	overall := Tally{}
	for _, r := range s.results {
		overall.Total++
		if r.Correct {
			overall.Correct++
		}
	}

	recent := Tally{}
	start := len(s.results) - s.cfg.RecentWindow
	if start < 0 {
		start = 0
	}
	for _, r := range s.results[start:] {
		recent.Total++
		if r.Correct {
			recent.Correct++
		}
	}

	return OverallStats{
		TotalAttempted:    overall.Total,
		TotalCorrect:      overall.Correct,
		SuccessRate:       overall.Rate(),
		RecentSuccessRate: recent.Rate(),
	}
}

func (s *Store) groupBy(key func(*Result) string) map[string]Tally {
	stats := make(map[string]Tally)
	for i := range s.results {
		t := stats[key(&s.results[i])]
		t.Total++
		if s.results[i].Correct {
			t.Correct++
		}
		stats[key(&s.results[i])] = t
	}
	return stats
}
