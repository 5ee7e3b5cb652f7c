package quizgen

import (
	"errors"
	"time"
)

// Operation identifies an arithmetic operation.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
)

// AllOperations lists every supported operation in display order.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}
}

// Tier is the classifier-assigned perceived difficulty of a question.
// It is independent from the dial: the dial skews which tiers the
// generator aims for, the tier is what a question actually is.
type Tier int

const (
	TierEasy   Tier = 1
	TierMedium Tier = 2
	TierHard   Tier = 3
)

func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Question is a single generated arithmetic problem.
//
// Operand1, Operand2, Operation and Answer are fixed at creation and
// never mutated. The remaining fields are filled in exactly once by the
// consuming session, when the learner answers or the question times out.
type Question struct {
	// Operand1 and Operand2 are positive integers. For division,
	// Operand1 = Operand2 × Answer by construction.
	Operand1 int
	Operand2 int

	// Operation is the arithmetic operation linking the operands.
	Operation Operation

	// Answer is the correct result. Always non-negative: subtraction
	// operands are ordered so Operand1 >= Operand2, and division picks
	// the answer first and derives Operand1 as an exact multiple.
	Answer int

	// UserAnswer is the learner's response. Meaningless until Answered.
	UserAnswer int

	// Answered reports whether the question has been responded to
	// (or has timed out).
	Answered bool

	// TimedOut is true when the question expired without a response;
	// UserAnswer is meaningless in that case.
	TimedOut bool

	// Correct is UserAnswer == Answer, derived when the answer is recorded.
	Correct bool

	// TimeElapsed is the time spent on this question. Zero in untimed mode.
	TimeElapsed time.Duration
}

// Record fills in the learner's answer. It is a no-op if the question
// has already been answered: the post-generation fields are write-once.
func (q *Question) Record(answer int, elapsed time.Duration) {
	if q.Answered {
		return
	}
	q.UserAnswer = answer
	q.Correct = answer == q.Answer
	q.Answered = true
	q.TimeElapsed = elapsed
}

// RecordTimeout marks the question as expired without a response.
// A timed-out question counts as incorrect.
func (q *Question) RecordTimeout(elapsed time.Duration) {
	if q.Answered {
		return
	}
	q.Correct = false
	q.Answered = true
	q.TimedOut = true
	q.TimeElapsed = elapsed
}

// ErrNoOperations is returned when generation is requested with an
// empty operation set.
var ErrNoOperations = errors.New("quizgen: no operation selected")

// Settings configures a single batch generation. Read-only to the generator.
type Settings struct {
	// Operations is the set of operations to draw from. Must be non-empty.
	Operations []Operation

	// MaxOperand bounds sampled operands. Multiplication and division
	// additionally cap the bound at 10 (classic times tables).
	// Values below 1 are a caller bug, not a checked error.
	MaxOperand int

	// QuestionCount is the number of questions to generate.
	QuestionCount int

	// Dial is the overall difficulty setting, 1 (gentle) to 5 (hard).
	// It skews the target-tier distribution and the operand strategy.
	Dial int
}

// Validate checks the parts of Settings the generator is contracted to
// reject. Malformed numeric bounds are documented preconditions instead.
func (s Settings) Validate() error {
	if len(s.Operations) == 0 {
		return ErrNoOperations
	}
	return nil
}
