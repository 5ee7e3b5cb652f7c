package session

import "time"

// tickMsg drives the per-question countdown in timed mode.
type tickMsg time.Time

// quizEndMsg is sent to trigger the summary transition.
type quizEndMsg struct{}
