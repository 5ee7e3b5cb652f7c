package setup

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/arithmo/internal/quiz"
	"github.com/abhisek/arithmo/internal/quizgen"
	"github.com/abhisek/arithmo/internal/router"
	"github.com/abhisek/arithmo/internal/screen"
	"github.com/abhisek/arithmo/internal/screens/session"
	"github.com/abhisek/arithmo/internal/ui/components"
	"github.com/abhisek/arithmo/internal/ui/layout"
	"github.com/abhisek/arithmo/internal/ui/theme"
)

// Row indices for cursor navigation. Operation toggles occupy the first
// four rows, in quizgen.AllOperations order.
const (
	opRows          = 4
	idxMaxOperand   = opRows
	idxCount        = opRows + 1
	idxDial         = opRows + 2
	idxTimed        = opRows + 3
	idxTimeLimit    = opRows + 4
	idxStart        = opRows + 5
	rowCount        = opRows + 6
	defaultOperand  = 20
	defaultQuestion = 10
)

// SetupScreen lets the learner configure and start a quiz.
type SetupScreen struct {
	cursor    int
	selected  map[quizgen.Operation]bool
	maxOp     components.Stepper
	count     components.Stepper
	dial      components.Stepper
	timed     bool
	timeLimit components.Stepper
	errMsg    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen with friendly defaults.
func New() *SetupScreen {
	maxOp := components.NewStepper("Largest number", defaultOperand, 5, 100)
	maxOp.Step = 5
	count := components.NewStepper("Questions", defaultQuestion, 5, 50)
	count.Step = 5
	limit := components.NewStepper("Seconds per question", int(quiz.DefaultTimePerQuestion.Seconds()), 5, 60)
	limit.Step = 5

	return &SetupScreen{
		selected: map[quizgen.Operation]bool{
			quizgen.OpAddition:    true,
			quizgen.OpSubtraction: true,
		},
		maxOp:     maxOp,
		count:     count,
		dial:      components.NewStepper("Difficulty", 3, 1, 5),
		timeLimit: limit,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "◂▸", Description: "Adjust"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		if s.cursor == idxTimeLimit && !s.timed {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < rowCount-1 {
			s.cursor++
		}
		if s.cursor == idxTimeLimit && !s.timed {
			s.cursor++
		}
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(1)
	case "space", " ":
		s.toggle()
	case "enter":
		if s.cursor == idxStart {
			return s.start()
		}
		s.toggle()
	}

	return s, nil
}

// adjust moves the stepper under the cursor.
func (s *SetupScreen) adjust(dir int) {
	step := func(st *components.Stepper) {
		if dir < 0 {
			st.Decrement()
		} else {
			st.Increment()
		}
	}
	switch s.cursor {
	case idxMaxOperand:
		step(&s.maxOp)
	case idxCount:
		step(&s.count)
	case idxDial:
		step(&s.dial)
	case idxTimed:
		s.timed = !s.timed
	case idxTimeLimit:
		step(&s.timeLimit)
	}
}

// toggle flips the operation or mode under the cursor.
func (s *SetupScreen) toggle() {
	if s.cursor < opRows {
		op := quizgen.AllOperations()[s.cursor]
		s.selected[op] = !s.selected[op]
		s.errMsg = ""
		return
	}
	if s.cursor == idxTimed {
		s.timed = !s.timed
	}
}

// start validates the settings and replaces this screen with a session.
func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	settings := quizgen.Settings{
		MaxOperand:    s.maxOp.Value,
		QuestionCount: s.count.Value,
		Dial:          s.dial.Value,
	}
	for _, op := range quizgen.AllOperations() {
		if s.selected[op] {
			settings.Operations = append(settings.Operations, op)
		}
	}

	mode := quiz.ModeUntimed
	if s.timed {
		mode = quiz.ModeTimed
	}
	perQuestion := time.Duration(s.timeLimit.Value) * time.Second

	gen := quizgen.New(time.Now().UnixNano())
	state, err := quiz.Start(gen, settings, mode, perQuestion)
	if err != nil {
		// The only settings error: no operation selected.
		s.errMsg = "Pick at least one operation to practice."
		return s, nil
	}

	next := session.New(state, func() screen.Screen { return New() })
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Set up your quiz"))
	b.WriteString("\n\n")

	opLabels := map[quizgen.Operation]string{
		quizgen.OpAddition:       "Addition",
		quizgen.OpSubtraction:    "Subtraction",
		quizgen.OpMultiplication: "Multiplication",
		quizgen.OpDivision:       "Division",
	}

	var rows []string
	for i, op := range quizgen.AllOperations() {
		mark := "[ ]"
		if s.selected[op] {
			mark = "[x]"
		}
		line := mark + " " + opLabels[op]
		if i == s.cursor {
			rows = append(rows, theme.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+line))
		}
	}
	rows = append(rows, "")
	rows = append(rows, s.stepperRow(s.maxOp, idxMaxOperand))
	rows = append(rows, s.stepperRow(s.count, idxCount))
	rows = append(rows, s.stepperRow(s.dial, idxDial))

	timedLine := "Timed mode: off"
	if s.timed {
		timedLine = "Timed mode: on"
	}
	if s.cursor == idxTimed {
		rows = append(rows, theme.Selected.Render("▸ "+timedLine))
	} else {
		rows = append(rows, theme.Unselected.Render("  "+timedLine))
	}
	if s.timed {
		rows = append(rows, s.stepperRow(s.timeLimit, idxTimeLimit))
	}

	rows = append(rows, "")
	start := "Start quiz"
	if s.cursor == idxStart {
		rows = append(rows, theme.Selected.Render("▸ "+start))
	} else {
		rows = append(rows, theme.Unselected.Render("  "+start))
	}

	block := strings.Join(rows, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

func (s *SetupScreen) stepperRow(st components.Stepper, idx int) string {
	sel := s.cursor == idx
	prefix := "  "
	if sel {
		prefix = "▸ "
	}
	style := theme.Unselected
	if sel {
		style = theme.Selected
	}
	return style.Render(prefix) + st.View(sel)
}
