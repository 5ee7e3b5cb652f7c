package components

import (
	"strings"

	"github.com/abhisek/arithmo/internal/quiz"
	"github.com/abhisek/arithmo/internal/ui/theme"
)

// TimerBar displays the per-question countdown as a shrinking bar whose
// color tracks the countdown urgency state.
type TimerBar struct {
	// Percent is the fraction of time remaining, 0 to 1.
	Percent float64

	// State picks the fill color: cyan, amber at half, red at a quarter.
	State quiz.CountdownState

	Width int
}

// View renders the timer bar.
func (t TimerBar) View() string {
	width := t.Width
	if width < 4 {
		width = 4
	}

	filled := int(float64(width) * t.Percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	fillStyle := theme.TimerNormal
	switch t.State {
	case quiz.CountdownWarning:
		fillStyle = theme.TimerWarning
	case quiz.CountdownDanger:
		fillStyle = theme.TimerDanger
	}

	return fillStyle.Render(strings.Repeat(" ", filled)) +
		theme.TimerEmpty.Render(strings.Repeat(" ", empty))
}
