package quizgen

import "fmt"

// Symbol returns the display symbol for an operation.
func Symbol(op Operation) string {
	switch op {
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return "+"
	}
}

// Format renders a question as "operand1 OP operand2 =". The display form
// is always re-derived from the question's fields, never cached.
func Format(q Question) string {
	return fmt.Sprintf("%d %s %d =", q.Operand1, Symbol(q.Operation), q.Operand2)
}
