package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/arithmo/internal/quizgen"
)

// Mode selects how a quiz is paced.
type Mode int

const (
	// ModeUntimed lets the learner take as long as they like; recorded
	// per-question time is zero.
	ModeUntimed Mode = iota

	// ModeTimed gives every question the same countdown; an expired
	// question is recorded as incorrect.
	ModeTimed
)

func (m Mode) String() string {
	if m == ModeTimed {
		return "timed"
	}
	return "untimed"
}

// DefaultTimePerQuestion is the countdown used in timed mode when the
// setup screen does not override it.
const DefaultTimePerQuestion = 20 * time.Second

// Phase represents where a quiz currently is.
type Phase int

const (
	PhaseAnswering Phase = iota // A question is on screen awaiting input
	PhaseFeedback               // Showing correct/incorrect feedback
	PhaseDone                   // All questions answered
)

// State tracks one run through a generated batch. It is owned by a single
// session screen; nothing here is safe for concurrent use.
type State struct {
	// QuizID identifies this run (for display only — nothing is persisted).
	QuizID string

	// Questions is the generated batch, answered in place as the quiz runs.
	Questions []quizgen.Question

	// Index is the cursor into Questions.
	Index int

	// Correct counts correct answers so far.
	Correct int

	// Mode is the pacing mode for this run.
	Mode Mode

	// TimePerQuestion is the per-question countdown in timed mode.
	TimePerQuestion time.Duration

	// StartTime is when the quiz began.
	StartTime time.Time

	// QuestionStart is when the current question was first displayed.
	QuestionStart time.Time

	// Phase is the current quiz phase.
	Phase Phase

	// LastCorrect records whether the most recent answer was right,
	// for the feedback overlay.
	LastCorrect bool

	// LastTimedOut is true when the most recent question expired
	// without an answer.
	LastTimedOut bool
}

// Start generates a fresh batch and returns the initial state. Settings
// validation failures (an empty operation set) surface before any
// question exists.
func Start(gen *quizgen.Generator, settings quizgen.Settings, mode Mode, perQuestion time.Duration) (*State, error) {
	questions, err := gen.Generate(settings)
	if err != nil {
		return nil, err
	}

	if perQuestion <= 0 {
		perQuestion = DefaultTimePerQuestion
	}

	now := time.Now()
	return &State{
		QuizID:          uuid.New().String(),
		Questions:       questions,
		Mode:            mode,
		TimePerQuestion: perQuestion,
		StartTime:       now,
		QuestionStart:   now,
		Phase:           PhaseAnswering,
	}, nil
}

// Current returns the question under the cursor, or nil when the quiz
// is finished.
func (s *State) Current() *quizgen.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Remaining returns how much of the current question's countdown is left.
// Always the full limit in untimed mode.
func (s *State) Remaining(now time.Time) time.Duration {
	if s.Mode != ModeTimed {
		return s.TimePerQuestion
	}
	left := s.TimePerQuestion - now.Sub(s.QuestionStart)
	if left < 0 {
		return 0
	}
	return left
}
