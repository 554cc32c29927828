package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"devprep/internal/ui/theme"
)

// AnswerInput collects a 1-based numeric answer selection. Non-digit keys
// are swallowed, and Selection range-checks the typed value so the caller
// can re-prompt instead of failing the question.
type AnswerInput struct {
	Model  textinput.Model
	Max    int
	errMsg string
}

// NewAnswerInput creates an input accepting selections in [1, max].
func NewAnswerInput(max int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", max)
	ti.CharLimit = 2
	ti.Focus()

	return AnswerInput{Model: ti, Max: max}
}

// Init returns the focus command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update filters input to digits and forwards to the text input.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// Selection parses the typed value. It returns false — and arms the
// re-prompt message — for empty, non-numeric, or out-of-range input.
func (a *AnswerInput) Selection() (int, bool) {
	n, err := strconv.Atoi(a.Model.Value())
	if err != nil || n < 1 || n > a.Max {
		a.errMsg = fmt.Sprintf("Enter a number between 1 and %d", a.Max)
		a.Model.SetValue("")
		return 0, false
	}
	a.errMsg = ""
	return n, true
}

// Reset clears the input for the next question.
func (a *AnswerInput) Reset(max int) {
	a.Max = max
	a.Model.SetValue("")
	a.Model.Placeholder = fmt.Sprintf("1-%d", max)
	a.errMsg = ""
}

// View renders the prompt line plus any re-prompt message.
func (a AnswerInput) View() string {
	s := "Your answer: " + a.Model.View()
	if a.errMsg != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(a.errMsg)
	}
	return s
}
