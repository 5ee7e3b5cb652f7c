package quizgen

// Classify re-derives the perceived difficulty of a generated question.
// Pure and deterministic: the same question always lands in the same tier.
//
// The tiering approximates a child's subjective difficulty (carries,
// borrows, round numbers) rather than raw magnitude, which is why it runs
// after generation instead of being baked into the operand strategy: the
// sampler cannot directly target these compound conditions.
func Classify(q Question, maxOperand int) Tier {
	if q.Operation == OpMultiplication {
		return classifyMultiplication(q)
	}
	return classifyLinear(q)
}

func classifyMultiplication(q Question) Tier {
	switch {
	case q.Operand1 < 3 || q.Operand2 < 3:
		return TierEasy
	case q.Operand1 < 6 || q.Operand2 < 6:
		return TierMedium
	default:
		return TierHard
	}
}

// classifyLinear covers addition, subtraction and division, which share
// one branch. Division questions are small by construction (divisor and
// quotient capped at the times-table bound), so the same round-number and
// small-operand heuristics apply.
func classifyLinear(q Question) Tier {
	a, b := q.Operand1, q.Operand2

	if (a <= 3 && b <= 3) || a <= 2 || b <= 2 {
		return TierEasy
	}

	switch {
	case a%10 == 0 && b%10 == 0:
		return TierMedium
	case a < 6 && b < 6:
		return TierMedium
	case a%10 == 0 || b%10 == 0:
		return TierMedium
	case q.Operation == OpAddition && q.Answer%10 == 0:
		// Sums to a round number, e.g. 17 + 13.
		return TierMedium
	case q.Operation == OpAddition && a%10 == b%10:
		// Matching ones digits, e.g. 14 + 24.
		return TierMedium
	case q.Operation == OpSubtraction && b == a%10:
		// Subtracting exactly the ones digit, e.g. 37 - 7.
		return TierMedium
	case q.Operation == OpSubtraction && q.Answer <= 5:
		return TierMedium
	case q.Operation == OpSubtraction && a-b <= 10:
		return TierMedium
	default:
		return TierHard
	}
}
