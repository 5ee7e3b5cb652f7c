package quiz

import "time"

// CountdownState describes how urgent the remaining time is, driving the
// timer bar's color.
type CountdownState int

const (
	CountdownNormal  CountdownState = iota
	CountdownWarning                // at or below half the time left
	CountdownDanger                 // at or below a quarter of the time left
)

// CountdownFor maps remaining time to an urgency state. The thresholds
// sit at 50% and 25% of the total countdown.
func CountdownFor(remaining, total time.Duration) CountdownState {
	if total <= 0 {
		return CountdownNormal
	}
	switch {
	case remaining*4 <= total:
		return CountdownDanger
	case remaining*2 <= total:
		return CountdownWarning
	default:
		return CountdownNormal
	}
}
