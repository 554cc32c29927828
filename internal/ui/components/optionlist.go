package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"devprep/internal/ui/theme"
)

// OptionList renders a numbered answer list. Positions are 1-based to match
// what the learner types. Before reveal every option renders neutrally;
// after reveal the correct option is highlighted green and a wrong pick red.
type OptionList struct {
	Options    []string
	CorrectPos int
	ChosenPos  int
	Revealed   bool
}

// NewOptionList creates a list over the given (already shuffled) options.
func NewOptionList(options []string, correctPos int) OptionList {
	return OptionList{
		Options:    options,
		CorrectPos: correctPos,
	}
}

// Reveal marks the list as answered with the learner's 1-based choice.
func (o *OptionList) Reveal(chosenPos int) {
	o.Revealed = true
	o.ChosenPos = chosenPos
}

// View renders the option lines.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		pos := i + 1
		line := fmt.Sprintf("  %d. %s", pos, opt)

		switch {
		case o.Revealed && pos == o.CorrectPos:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line)
		case o.Revealed && pos == o.ChosenPos:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line)
		case o.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		}
		s += "\n"
	}
	return s
}
