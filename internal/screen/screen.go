package screen

import (
	tea "charm.land/bubbletea/v2"

	"devprep/internal/ui/layout"
)

// Screen is one full-frame view of the application.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string

	// KeyHints returns the footer key bindings for the current state.
	KeyHints() []layout.KeyHint
}

// SwitchMsg replaces the active screen. The flow is strictly linear
// (quiz, then summary), so there is no screen stack to unwind.
type SwitchMsg struct {
	To Screen
}

// Switch returns a command that switches to the given screen.
func Switch(to Screen) tea.Cmd {
	return func() tea.Msg { return SwitchMsg{To: to} }
}
