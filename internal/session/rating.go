package session

// Rating labels a session's overall performance tier.
type Rating string

const (
	RatingExcellent     Rating = "excellent"
	RatingGood          Rating = "good"
	RatingFair          Rating = "fair"
	RatingNeedsPractice Rating = "needs-practice"
)

// Thresholds holds the percentage cutoffs between rating tiers. A score at
// or above a cutoff earns that tier.
type Thresholds struct {
	Excellent float64
	Good      float64
	Fair      float64
}

// DefaultThresholds returns the standard 90/75/60 cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Excellent: 90, Good: 75, Fair: 60}
}

// Assess maps a percentage score to its rating tier.
func (t Thresholds) Assess(percent float64) Rating {
	switch {
	case percent >= t.Excellent:
		return RatingExcellent
	case percent >= t.Good:
		return RatingGood
	case percent >= t.Fair:
		return RatingFair
	default:
		return RatingNeedsPractice
	}
}
