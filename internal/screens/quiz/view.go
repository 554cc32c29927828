package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"devprep/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	q := s.current.Question

	var b strings.Builder

	meta := fmt.Sprintf("  Topic: %s   Difficulty: %s", q.Topic, strings.ToUpper(q.Difficulty))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.Scenario != "" {
		b.WriteString(theme.Hint.Width(width - 4).Render("  Scenario: " + q.Scenario))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 4).
		Render("  " + q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(s.options.View())
	b.WriteString("\n")

	if s.phase == phaseFeedback {
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString("  " + s.input.View())
	}

	return b.String()
}

func (s *Screen) renderFeedback(width int) string {
	q := s.current.Question

	var b strings.Builder
	if s.outcome.Correct {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("  Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("  Incorrect. Correct answer: " + s.outcome.CorrectText))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width - 4).
		Render("  Explanation: " + q.Explanation))
	b.WriteString("\n")

	if q.RealWorldContext != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width - 4).
			Render("  Real-world context: " + q.RealWorldContext))
		b.WriteString("\n")
	}

	if s.outcome.SaveErr != nil {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Width(width - 4).
			Render("  Warning: could not save progress: " + s.outcome.SaveErr.Error()))
		b.WriteString("\n")
	}

	if s.gate && s.idx+1 < len(s.queue) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  Continue to next question? (y/n)"))
	}

	return b.String()
}
