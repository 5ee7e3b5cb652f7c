package quiz

import (
	"time"

	"github.com/abhisek/arithmo/internal/quizgen"
)

// OperationResult tracks per-operation performance within one quiz.
type OperationResult struct {
	Operation quizgen.Operation
	Attempted int
	Correct   int
}

// Summary is the finished-quiz view handed to the summary screen.
type Summary struct {
	QuizID         string
	Mode           Mode
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	Duration       time.Duration

	// OperationResults is ordered by quizgen.AllOperations, holding only
	// operations that were actually attempted.
	OperationResults []OperationResult

	// Questions is the answered batch, in quiz order, for the review list.
	Questions []quizgen.Question
}

// BuildSummary derives the summary from a finished (or abandoned) quiz.
func BuildSummary(s *State) *Summary {
	sum := &Summary{
		QuizID:    s.QuizID,
		Mode:      s.Mode,
		Duration:  time.Since(s.StartTime),
		Questions: s.Questions,
	}

	perOp := make(map[quizgen.Operation]*OperationResult)
	for _, q := range s.Questions {
		if !q.Answered {
			continue
		}
		sum.TotalQuestions++
		if q.Correct {
			sum.TotalCorrect++
		}

		r := perOp[q.Operation]
		if r == nil {
			r = &OperationResult{Operation: q.Operation}
			perOp[q.Operation] = r
		}
		r.Attempted++
		if q.Correct {
			r.Correct++
		}
	}

	if sum.TotalQuestions > 0 {
		sum.Accuracy = float64(sum.TotalCorrect) / float64(sum.TotalQuestions)
	}

	for _, op := range quizgen.AllOperations() {
		if r := perOp[op]; r != nil {
			sum.OperationResults = append(sum.OperationResults, *r)
		}
	}

	return sum
}
