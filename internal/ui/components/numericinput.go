package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumericInput wraps bubbles/textinput and accepts only digits. All
// quiz answers are non-negative integers, so there is no sign handling.
type NumericInput struct {
	Model textinput.Model
}

// NewNumericInput creates a focused digits-only input.
func NewNumericInput(placeholder string, charLimit int) NumericInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return NumericInput{Model: ti}
}

// Init returns the initial command.
func (n NumericInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages, dropping any printable key that is not a digit.
func (n NumericInput) Update(msg tea.Msg) (NumericInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumericInput) View() string {
	return n.Model.View()
}

// Value returns the raw input text.
func (n NumericInput) Value() string {
	return n.Model.Value()
}

// IntValue returns the input parsed as an integer.
func (n NumericInput) IntValue() (int, error) {
	return strconv.Atoi(n.Model.Value())
}

// Reset clears the input for the next question.
func (n *NumericInput) Reset() {
	n.Model.SetValue("")
}
