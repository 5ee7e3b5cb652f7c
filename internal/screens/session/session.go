package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/arithmo/internal/quiz"
	"github.com/abhisek/arithmo/internal/router"
	"github.com/abhisek/arithmo/internal/screen"
	"github.com/abhisek/arithmo/internal/screens/summary"
	"github.com/abhisek/arithmo/internal/ui/components"
	"github.com/abhisek/arithmo/internal/ui/layout"
)

// tickInterval is short enough to keep the timer bar smooth.
const tickInterval = 250 * time.Millisecond

// SessionScreen runs one quiz from first question to summary.
type SessionScreen struct {
	state       *quiz.State
	input       components.NumericInput
	again       func() screen.Screen
	showingQuit bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen over an already-started quiz. The again
// factory produces a fresh setup screen for the summary's replay path
// (a factory, so this package does not import the setup screen).
func New(state *quiz.State, again func() screen.Screen) *SessionScreen {
	return &SessionScreen{
		state: state,
		input: components.NewNumericInput("?", 7),
		again: again,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.input.Init()}
	if s.state.Mode == quiz.ModeTimed {
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == quiz.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick()

	case quizEndMsg:
		return s.finish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Phase == quiz.PhaseAnswering && !s.showingQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.state.Mode != quiz.ModeTimed || s.state.Phase == quiz.PhaseDone {
		return s, nil
	}

	// The countdown keeps running behind the quit dialog; a question can
	// expire while the learner is deciding.
	if s.state.Phase == quiz.PhaseAnswering && s.state.Remaining(time.Now()) <= 0 {
		quiz.Timeout(s.state)
	}

	return s, tick()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuit {
		switch key {
		case "y", "Y":
			s.showingQuit = false
			return s, func() tea.Msg { return quizEndMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
			return s, nil
		}
		return s, nil
	}

	switch s.state.Phase {
	case quiz.PhaseFeedback:
		// Any key dismisses feedback.
		if !quiz.Advance(s.state, time.Now()) {
			return s, func() tea.Msg { return quizEndMsg{} }
		}
		s.input.Reset()
		return s, nil

	case quiz.PhaseAnswering:
		switch key {
		case "esc":
			s.showingQuit = true
			return s, nil
		case "enter":
			return s.submit()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	answer, err := s.input.IntValue()
	if err != nil {
		// Empty input; nothing to submit.
		return s, nil
	}
	quiz.SubmitAnswer(s.state, answer, time.Now())
	return s, nil
}

// finish builds the summary and swaps this screen out so Esc cannot
// navigate back into a finished quiz.
func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	sum := quiz.BuildSummary(s.state)
	next := summary.New(sum, s.again)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
