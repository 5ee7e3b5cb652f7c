package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arithmo/internal/quiz"
	"github.com/abhisek/arithmo/internal/quizgen"
	"github.com/abhisek/arithmo/internal/router"
	"github.com/abhisek/arithmo/internal/screen"
	"github.com/abhisek/arithmo/internal/ui/components"
	"github.com/abhisek/arithmo/internal/ui/layout"
	"github.com/abhisek/arithmo/internal/ui/theme"
)

// SummaryScreen displays the finished quiz results.
type SummaryScreen struct {
	summary *quiz.Summary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen. The again factory produces a fresh
// setup screen for the replay path.
func New(sum *quiz.Summary, again func() screen.Screen) *SummaryScreen {
	menu := components.NewMenu([]components.MenuItem{
		{
			Label: "Play again",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.ResetScreenMsg{Screen: again()}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	})

	return &SummaryScreen{summary: sum, menu: menu}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s quiz — %d:%02d", sum.Mode, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))

	// Per-operation breakdown.
	if len(sum.OperationResults) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, r := range sum.OperationResults {
			line := fmt.Sprintf("%-16s %d/%d correct", r.Operation, r.Correct, r.Attempted)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Body.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Review list: every answered question with its verdict.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")
	for _, q := range sum.Questions {
		if !q.Answered {
			continue
		}
		var line string
		var style lipgloss.Style
		switch {
		case q.Correct:
			line = fmt.Sprintf("✓ %s %d", quizgen.Format(q), q.UserAnswer)
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case q.TimedOut:
			line = fmt.Sprintf("✗ %s %d  (ran out of time)", quizgen.Format(q), q.Answer)
			style = lipgloss.NewStyle().Foreground(theme.Error)
		default:
			line = fmt.Sprintf("✗ %s %d  (you said %d)", quizgen.Format(q), q.Answer, q.UserAnswer)
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
