package session

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"devprep/internal/bank"
	"devprep/internal/progress"
)

// TopicScore accumulates per-topic counters within one session.
type TopicScore struct {
	Correct int
	Total   int
}

// Session drives one bounded run of questions: it shuffles option order per
// presentation, judges answers against the shuffled position, keeps running
// score and per-topic counters, and forwards results to the progress store
// when tracking is enabled.
type Session struct {
	ID        string
	Score     int
	Total     int
	StartTime time.Time

	// TopicPerformance maps topic to its counters, created on first touch.
	TopicPerformance map[string]*TopicScore

	// Results holds this run's outcomes in answer order. Only populated
	// when tracking is enabled.
	Results []progress.Result

	store      *progress.Store
	thresholds Thresholds

	// now is a clock hook for tests.
	now func() time.Time
}

// New creates a session. A nil store disables progress tracking.
func New(store *progress.Store, thresholds Thresholds) *Session {
	return &Session{
		ID:               uuid.NewString(),
		StartTime:        time.Now(),
		TopicPerformance: make(map[string]*TopicScore),
		store:            store,
		thresholds:       thresholds,
		now:              time.Now,
	}
}

// Presented is one question prepared for display: options freshly shuffled,
// with the correct answer's new 1-based position tracked. The same question
// presented twice may order its options differently each time.
type Presented struct {
	Question   *bank.Question
	Options    []string
	CorrectPos int
	AskedAt    time.Time
}

// Present shuffles the question's options for display. Every permutation is
// equally likely, and the shuffle never touches the catalog entry itself.
func (s *Session) Present(q *bank.Question) *Presented {
	type option struct {
		text    string
		correct bool
	}
	opts := make([]option, len(q.Options))
	for i, text := range q.Options {
		opts[i] = option{text: text, correct: i+1 == q.CorrectIndex}
	}
	rand.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})

	p := &Presented{
		Question: q,
		Options:  make([]string, len(opts)),
		AskedAt:  s.now(),
	}
	for i, o := range opts {
		p.Options[i] = o.text
		if o.correct {
			p.CorrectPos = i + 1
		}
	}
	return p
}

// Outcome is the judgement of one submitted answer.
type Outcome struct {
	Correct bool

	// CorrectText is the original correct option text from the catalog.
	// Feedback always names the answer by text so the learner never has to
	// reconcile shuffled and unshuffled positions.
	CorrectText string

	// SaveErr reports a failed progress write. The result is still counted
	// and kept in memory; the session carries on.
	SaveErr error
}

// Submit judges the 1-based choice against the shuffled correct position,
// updates score and topic counters, and records the result if tracking is
// enabled. Choice validation (range, numeric) is the caller's concern; the
// engine only ever sees a committed answer.
func (s *Session) Submit(p *Presented, choice int) Outcome {
	q := p.Question
	correct := choice == p.CorrectPos

	s.Total++
	ts := s.TopicPerformance[q.Topic]
	if ts == nil {
		ts = &TopicScore{}
		s.TopicPerformance[q.Topic] = ts
	}
	ts.Total++
	if correct {
		s.Score++
		ts.Correct++
	}

	out := Outcome{
		Correct:     correct,
		CorrectText: q.Options[q.CorrectIndex-1],
	}

	if s.store != nil {
		now := s.now()
		result := progress.Result{
			QuestionID: q.ID,
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
			Correct:    correct,
			Timestamp:  now,
			TimeTaken:  now.Sub(p.AskedAt).Seconds(),
		}
		out.SaveErr = s.store.Append(result)
		s.Results = append(s.Results, result)
	}

	return out
}

// Tracking reports whether results are being forwarded to a progress store.
func (s *Session) Tracking() bool {
	return s.store != nil
}
