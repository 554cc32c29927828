package session

import (
	"sort"
	"time"
)

// TopicLine is one per-topic row of the session summary.
type TopicLine struct {
	Topic   string
	Correct int
	Total   int
	Percent float64
}

// Summary holds everything the summary display and export need.
type Summary struct {
	SessionID string
	Score     int
	Total     int
	Percent   float64
	Duration  time.Duration
	Topics    []TopicLine
	Rating    Rating
}

// Summarize derives the session summary from accumulated state. It reads
// but never mutates the session, so calling it repeatedly between
// submissions yields the same numbers.
func (s *Session) Summarize() Summary {
	percent := 0.0
	if s.Total > 0 {
		percent = float64(s.Score) / float64(s.Total) * 100
	}

	topics := make([]TopicLine, 0, len(s.TopicPerformance))
	for topic, ts := range s.TopicPerformance {
		pct := 0.0
		if ts.Total > 0 {
			pct = float64(ts.Correct) / float64(ts.Total) * 100
		}
		topics = append(topics, TopicLine{
			Topic:   topic,
			Correct: ts.Correct,
			Total:   ts.Total,
			Percent: pct,
		})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Topic < topics[j].Topic })

	return Summary{
		SessionID: s.ID,
		Score:     s.Score,
		Total:     s.Total,
		Percent:   percent,
		Duration:  s.now().Sub(s.StartTime),
		Topics:    topics,
		Rating:    s.thresholds.Assess(percent),
	}
}
