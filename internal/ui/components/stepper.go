package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/arithmo/internal/ui/theme"
)

// Stepper is a bounded integer picker adjusted with left/right keys.
type Stepper struct {
	Label string
	Value int
	Min   int
	Max   int
	Step  int
}

// NewStepper creates a stepper with step 1.
func NewStepper(label string, value, min, max int) Stepper {
	return Stepper{Label: label, Value: value, Min: min, Max: max, Step: 1}
}

// Decrement moves the value down, clamped at Min.
func (s *Stepper) Decrement() {
	s.Value -= s.Step
	if s.Value < s.Min {
		s.Value = s.Min
	}
}

// Increment moves the value up, clamped at Max.
func (s *Stepper) Increment() {
	s.Value += s.Step
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// View renders the stepper row.
func (s Stepper) View(selected bool) string {
	labelStyle := theme.Unselected
	if selected {
		labelStyle = theme.Selected
	}

	arrows := fmt.Sprintf("◂ %d ▸", s.Value)
	if !selected {
		arrows = fmt.Sprintf("  %d  ", s.Value)
	}

	return labelStyle.Render(s.Label) + "  " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(arrows)
}
