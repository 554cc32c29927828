package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"devprep/internal/bank"
	"devprep/internal/screen"
	"devprep/internal/screens/summary"
	"devprep/internal/session"
	"devprep/internal/ui/components"
	"devprep/internal/ui/layout"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
)

// Screen runs a fixed question list through the session engine. Each
// question goes display → collect-answer → judge-and-record; Esc aborts the
// run without crediting the in-flight question and still lands on the
// summary for whatever was completed.
type Screen struct {
	sess  *session.Session
	queue []bank.Question
	label string

	// gate enables the interview-mode "continue?" confirmation between
	// questions; declining ends the run early.
	gate bool

	idx     int
	current *session.Presented
	options components.OptionList
	input   components.AnswerInput
	outcome session.Outcome
	phase   phase
}

var _ screen.Screen = (*Screen)(nil)

// New creates a quiz screen over a non-empty question list.
func New(sess *session.Session, queue []bank.Question, label string, gate bool) *Screen {
	s := &Screen{
		sess:  sess,
		queue: queue,
		label: label,
		gate:  gate,
	}
	s.present()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return s.label
}

// Status feeds the header with the running position and score.
func (s *Screen) Status() string {
	return fmt.Sprintf("Q %d/%d   score %d", min(s.idx+1, len(s.queue)), len(s.queue), s.sess.Score)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.phase == phaseFeedback {
		if s.gate && s.idx+1 < len(s.queue) {
			return []layout.KeyHint{
				{Key: "Y", Description: "Next question"},
				{Key: "N", Description: "End session"},
			}
		}
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "End session"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.phase == phaseQuestion {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch s.phase {
	case phaseQuestion:
		return s.updateQuestion(kmsg)
	case phaseFeedback:
		return s.updateFeedback(kmsg)
	}
	return s, nil
}

func (s *Screen) updateQuestion(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		// Abort: the in-flight question is never submitted or counted.
		return s, s.end()
	case "enter":
		choice, ok := s.input.Selection()
		if !ok {
			return s, nil
		}
		s.outcome = s.sess.Submit(s.current, choice)
		s.options.Reveal(choice)
		s.phase = phaseFeedback
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

func (s *Screen) updateFeedback(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.idx+1 >= len(s.queue) {
		return s, s.end()
	}

	if s.gate {
		switch kmsg.String() {
		case "y", "Y", "enter":
			s.next()
			return s, s.input.Init()
		case "n", "N", "esc", "q":
			return s, s.end()
		}
		return s, nil
	}

	s.next()
	return s, s.input.Init()
}

// present prepares the current question for display.
func (s *Screen) present() {
	q := &s.queue[s.idx]
	s.current = s.sess.Present(q)
	s.options = components.NewOptionList(s.current.Options, s.current.CorrectPos)
	s.input = components.NewAnswerInput(len(s.current.Options))
	s.phase = phaseQuestion
}

func (s *Screen) next() {
	s.idx++
	s.present()
}

func (s *Screen) end() tea.Cmd {
	return screen.Switch(summary.New(s.sess.Summarize()))
}
