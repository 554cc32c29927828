package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"devprep/internal/screen"
	"devprep/internal/ui/layout"
)

// StatusProvider is an optional interface screens implement to put a status
// string (e.g. running score) in the header.
type StatusProvider interface {
	Status() string
}

// Model is the root Bubble Tea model. The flow is linear, so it hosts a
// single active screen and swaps it on screen.SwitchMsg.
type Model struct {
	active screen.Screen
	width  int
	height int
}

func newModel(initial screen.Screen) Model {
	return Model{active: initial}
}

func (m Model) Init() tea.Cmd {
	return m.active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SwitchMsg:
		m.active = msg.To
		return m, m.active.Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	status := ""
	if sp, ok := m.active.(StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(m.active.Title(), status, m.width)
	footer := layout.RenderFooter(m.active.KeyHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program on the given initial screen and blocks
// until it quits.
func Run(initial screen.Screen) error {
	p := tea.NewProgram(newModel(initial))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
