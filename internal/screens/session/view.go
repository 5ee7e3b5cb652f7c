package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/arithmo/internal/quiz"
	"github.com/abhisek/arithmo/internal/quizgen"
	"github.com/abhisek/arithmo/internal/ui/components"
	"github.com/abhisek/arithmo/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuit {
		return renderQuitConfirm(width)
	}
	if s.state.Phase == quiz.PhaseFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

func (s *SessionScreen) renderQuestion(width int) string {
	q := s.state.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.state.Index+1, len(s.state.Questions)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  ",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.state.Correct,
		))

	gap := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", gap) + infoRight)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Countdown bar, timed mode only.
	if s.state.Mode == quiz.ModeTimed {
		remaining := s.state.Remaining(time.Now())
		total := s.state.TimePerQuestion
		bar := components.TimerBar{
			Percent: float64(remaining) / float64(total),
			State:   quiz.CountdownFor(remaining, total),
			Width:   min(width-20, 40),
		}
		secs := int(remaining.Seconds())
		label := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %2ds", secs))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()+label))
		b.WriteString("\n\n")
	}

	// The question itself.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(quizgen.Format(*q)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Answer: "+s.input.View()))

	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	q := s.state.Current()

	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case s.state.LastTimedOut:
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Time's up!"))
	case s.state.LastCorrect:
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	default:
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite"))
	}

	if q != nil && !s.state.LastCorrect {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s %d", quizgen.Format(*q), q.Answer)))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End quiz early?"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Answered questions will still be scored."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, show my results"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
