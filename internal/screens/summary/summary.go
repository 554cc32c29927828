package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"devprep/internal/screen"
	"devprep/internal/session"
	"devprep/internal/ui/components"
	"devprep/internal/ui/layout"
	"devprep/internal/ui/theme"
)

// ratingMessages maps assessment tiers to the line shown under the score.
var ratingMessages = map[session.Rating]string{
	session.RatingExcellent:     "Excellent! You're interview-ready.",
	session.RatingGood:          "Great work! You're well-prepared.",
	session.RatingFair:          "Good progress. Focus on weak areas.",
	session.RatingNeedsPractice: "More preparation needed. Keep practicing.",
}

// Screen displays the end-of-session summary.
type Screen struct {
	sum session.Summary
}

var _ screen.Screen = (*Screen)(nil)

// New creates a summary screen for a finished run.
func New(sum session.Summary) *Screen {
	return &Screen{sum: sum}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Session Summary"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Exit"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sum := s.sum

	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete"))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d/%d (%.1f%%)", sum.Score, sum.Total, sum.Percent)
	b.WriteString(center.Foreground(theme.Text).Render(scoreLine))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("Duration: %dm %ds", mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Accent).Render(ratingMessages[sum.Rating]))
	b.WriteString("\n\n")

	if len(sum.Topics) > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render("Performance by topic"))
		b.WriteString("\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).
			Render(strings.Repeat("─", min(width-8, 50)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, line := range sum.Topics {
			bar := components.ProgressBar{Percent: line.Percent / 100, Width: 26}
			row := fmt.Sprintf("%-16s %d/%d  %s", line.Topic, line.Correct, line.Total, bar.View())
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(row)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
