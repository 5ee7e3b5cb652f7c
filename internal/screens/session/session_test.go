package session

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/arithmo/internal/quiz"
	"github.com/abhisek/arithmo/internal/quizgen"
	"github.com/abhisek/arithmo/internal/router"
	"github.com/abhisek/arithmo/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen(t *testing.T, mode quiz.Mode, perQuestion time.Duration) *SessionScreen {
	t.Helper()
	state, err := quiz.Start(quizgen.New(1), quizgen.Settings{
		Operations:    []quizgen.Operation{quizgen.OpAddition},
		MaxOperand:    10,
		QuestionCount: 2,
		Dial:          1,
	}, mode, perQuestion)
	if err != nil {
		t.Fatalf("quiz.Start: %v", err)
	}
	return New(state, func() screen.Screen { return nil })
}

func TestSubmit_EmptyInputIsIgnored(t *testing.T) {
	s := testScreen(t, quiz.ModeUntimed, 0)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SessionScreen)

	if s.state.Phase != quiz.PhaseAnswering {
		t.Errorf("expected answering phase after empty submit, got %v", s.state.Phase)
	}
}

func TestSubmit_CorrectAnswerShowsFeedback(t *testing.T) {
	s := testScreen(t, quiz.ModeUntimed, 0)
	q := s.state.Current()

	// Type the correct answer digit by digit, then submit.
	for _, r := range []rune(intToDigits(q.Answer)) {
		updated, _ := s.Update(keyPress(r))
		s = updated.(*SessionScreen)
	}
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*SessionScreen)

	if s.state.Phase != quiz.PhaseFeedback {
		t.Fatalf("expected feedback phase, got %v", s.state.Phase)
	}
	if !s.state.LastCorrect {
		t.Error("expected LastCorrect after typing the right answer")
	}
	if s.state.Correct != 1 {
		t.Errorf("expected 1 correct, got %d", s.state.Correct)
	}
}

func TestFeedback_AnyKeyAdvances(t *testing.T) {
	s := testScreen(t, quiz.ModeUntimed, 0)
	quiz.SubmitAnswer(s.state, s.state.Current().Answer, time.Now())

	updated, _ := s.Update(keyPress(' '))
	s = updated.(*SessionScreen)

	if s.state.Phase != quiz.PhaseAnswering {
		t.Errorf("expected answering phase on next question, got %v", s.state.Phase)
	}
	if s.state.Index != 1 {
		t.Errorf("expected cursor at question 1, got %d", s.state.Index)
	}
}

func TestLastFeedback_TransitionsToSummary(t *testing.T) {
	s := testScreen(t, quiz.ModeUntimed, 0)

	// Answer both questions.
	quiz.SubmitAnswer(s.state, s.state.Current().Answer, time.Now())
	quiz.Advance(s.state, time.Now())
	quiz.SubmitAnswer(s.state, s.state.Current().Answer, time.Now())

	// Dismissing the last feedback triggers the end message.
	updated, cmd := s.Update(keyPress(' '))
	s = updated.(*SessionScreen)
	if cmd == nil {
		t.Fatal("expected a command ending the quiz")
	}
	if _, ok := cmd().(quizEndMsg); !ok {
		t.Fatal("expected quizEndMsg")
	}

	// The end message swaps in the summary screen.
	_, cmd = s.Update(quizEndMsg{})
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg carrying the summary screen")
	}
}

func TestEsc_ShowsQuitConfirmAndYesEnds(t *testing.T) {
	s := testScreen(t, quiz.ModeUntimed, 0)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*SessionScreen)
	if !s.showingQuit {
		t.Fatal("expected quit confirmation after esc")
	}

	updated, cmd := s.Update(keyPress('y'))
	s = updated.(*SessionScreen)
	if cmd == nil {
		t.Fatal("expected end command after confirming quit")
	}
	if _, ok := cmd().(quizEndMsg); !ok {
		t.Error("expected quizEndMsg after confirming quit")
	}
}

func TestQuitConfirm_NoResumes(t *testing.T) {
	s := testScreen(t, quiz.ModeUntimed, 0)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*SessionScreen)
	updated, _ = s.Update(keyPress('n'))
	s = updated.(*SessionScreen)

	if s.showingQuit {
		t.Error("expected quit confirmation dismissed")
	}
	if s.state.Phase != quiz.PhaseAnswering {
		t.Errorf("expected answering phase, got %v", s.state.Phase)
	}
}

func TestTick_ExpiresOverdueQuestion(t *testing.T) {
	s := testScreen(t, quiz.ModeTimed, time.Millisecond)
	s.state.QuestionStart = time.Now().Add(-time.Second)

	updated, cmd := s.Update(tickMsg(time.Now()))
	s = updated.(*SessionScreen)

	if s.state.Phase != quiz.PhaseFeedback {
		t.Errorf("expected feedback phase after expiry, got %v", s.state.Phase)
	}
	if !s.state.LastTimedOut {
		t.Error("expected LastTimedOut")
	}
	if cmd == nil {
		t.Error("expected the tick chain to continue")
	}
}

// intToDigits renders a non-negative int without fmt to keep the test
// input path identical to real key presses.
func intToDigits(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
