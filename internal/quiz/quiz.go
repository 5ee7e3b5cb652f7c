package quiz

import "time"

// SubmitAnswer records the learner's answer on the current question and
// moves the quiz into the feedback phase. The question's answer fields
// are written exactly once; a submit outside the answering phase is a
// no-op.
func SubmitAnswer(s *State, answer int, now time.Time) {
	q := s.Current()
	if q == nil || s.Phase != PhaseAnswering {
		return
	}

	elapsed := time.Duration(0)
	if s.Mode == ModeTimed {
		elapsed = now.Sub(s.QuestionStart)
		if elapsed > s.TimePerQuestion {
			elapsed = s.TimePerQuestion
		}
	}

	q.Record(answer, elapsed)
	if q.Correct {
		s.Correct++
	}
	s.LastCorrect = q.Correct
	s.LastTimedOut = false
	s.Phase = PhaseFeedback
}

// Timeout expires the current question: it counts as incorrect with the
// full countdown as its elapsed time. Only meaningful in timed mode.
func Timeout(s *State) {
	q := s.Current()
	if q == nil || s.Phase != PhaseAnswering {
		return
	}

	q.RecordTimeout(s.TimePerQuestion)
	s.LastCorrect = false
	s.LastTimedOut = true
	s.Phase = PhaseFeedback
}

// Advance moves past the feedback overlay to the next question.
// Reports false when the batch is exhausted, leaving the quiz done.
func Advance(s *State, now time.Time) bool {
	if s.Phase != PhaseFeedback {
		return s.Phase == PhaseAnswering
	}

	s.Index++
	if s.Index >= len(s.Questions) {
		s.Phase = PhaseDone
		return false
	}

	s.QuestionStart = now
	s.Phase = PhaseAnswering
	return true
}
