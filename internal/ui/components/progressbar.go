package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"devprep/internal/ui/theme"
)

// ProgressBar is a horizontal bar used for session progress and per-topic
// summary rates.
type ProgressBar struct {
	Percent float64
	Width   int
}

// View renders the bar with a trailing percentage.
func (p ProgressBar) View() string {
	barWidth := p.Width - 6 // room for " 100%"
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Foreground(theme.Primary).
		Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).
			Render(strings.Repeat("░", barWidth-filled))

	return bar + lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %3.0f%%", p.Percent*100))
}
