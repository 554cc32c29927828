package progress

import "time"

// Result records the outcome of one answered question. Topic and difficulty
// are denormalized copies taken at answer time; they do not track later
// catalog edits. Results are append-only and never edited or deleted.
type Result struct {
	QuestionID string    `json:"question_id"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	Correct    bool      `json:"correct"`
	Timestamp  time.Time `json:"timestamp"`

	// TimeTaken is the elapsed seconds between question display and
	// submission, 0 when unknown.
	TimeTaken float64 `json:"time_taken"`
}
