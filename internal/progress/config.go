package progress

// Config holds progress analysis tunables.
type Config struct {
	// MinAttempts is the minimum number of recorded attempts a topic needs
	// before it can be flagged as a weak area. Below this, a low rate is
	// treated as noise rather than signal.
	MinAttempts int

	// MaxWeakAreas caps how many weak topics WeakAreas returns.
	MaxWeakAreas int

	// RecentWindow is how many trailing results feed the recent success rate.
	RecentWindow int
}

// DefaultConfig returns the standard analysis settings.
func DefaultConfig() Config {
	return Config{
		MinAttempts:  3,
		MaxWeakAreas: 5,
		RecentWindow: 10,
	}
}
