package quizgen

// timesTableCap limits multiplication and division operands to classic
// times tables regardless of the configured maximum operand.
const timesTableCap = 10

// maxAttemptsPerSlot bounds the rejection-sampling loop for one question.
// Exhausting it triggers unconditioned fallback acceptance, so worst-case
// generation cost is QuestionCount × maxAttemptsPerSlot samples.
const maxAttemptsPerSlot = 20

// Generator assembles batches of arithmetic questions matching a target
// difficulty mix and novelty constraints.
//
// A Generator holds no batch state between calls; the accepted-question
// history lives on the stack of each Generate call. It is still not safe
// for concurrent use because the underlying sampler is not.
type Generator struct {
	sampler *Sampler
}

// New creates a Generator seeded with the given value. Equal seeds and
// equal settings produce identical batches.
func New(seed int64) *Generator {
	return &Generator{sampler: NewSampler(seed)}
}

// Generate produces settings.QuestionCount questions drawn from the
// selected operations, in generation order.
//
// Each slot runs a bounded rejection loop: sample a candidate, classify
// it, and accept only if it hits a freshly drawn target tier, is not an
// exact repeat within the batch, and does not share both operation and an
// operand with the immediately preceding question. When all attempts for
// a slot are exhausted (a restrictive MaxOperand can make the constraint
// space tiny), one unconditioned sample is accepted instead — liveness is
// preferred over strict constraint satisfaction.
func (g *Generator) Generate(settings Settings) ([]Question, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	history := make([]Question, 0, settings.QuestionCount)

	for len(history) < settings.QuestionCount {
		q, ok := g.nextQuestion(settings, history)
		if !ok {
			// Fallback: accept one unconditioned sample.
			op := Pick(g.sampler, settings.Operations)
			q = g.sampleCandidate(op, settings.MaxOperand, settings.Dial)
		}
		history = append(history, q)
	}

	return history, nil
}

// nextQuestion runs the rejection loop for a single slot against the
// batch history so far. Reports false when every attempt was rejected.
func (g *Generator) nextQuestion(settings Settings, history []Question) (Question, bool) {
	for attempt := 0; attempt < maxAttemptsPerSlot; attempt++ {
		op := Pick(g.sampler, settings.Operations)
		candidate := g.sampleCandidate(op, settings.MaxOperand, settings.Dial)

		tier := Classify(candidate, settings.MaxOperand)
		if tier != g.targetTier(settings.Dial) {
			continue
		}
		if seenInBatch(history, candidate) {
			continue
		}
		if len(history) > 0 && tooSimilar(history[len(history)-1], candidate) {
			continue
		}
		return candidate, true
	}
	return Question{}, false
}

// targetTier draws the tier a candidate must classify into. The weights
// skew toward hard as the dial rises, reaching all-hard at dial 5.
// Sampled independently per attempt, not per batch.
func (g *Generator) targetTier(dial int) Tier {
	var hard, medium int // percentages; easy takes the rest
	switch {
	case dial <= 1:
		hard, medium = 50, 30
	case dial == 2:
		hard, medium = 60, 30
	case dial == 3:
		hard, medium = 75, 20
	case dial == 4:
		hard, medium = 90, 9
	default:
		hard, medium = 100, 0
	}

	roll := g.sampler.IntBetween(1, 100)
	switch {
	case roll <= hard:
		return TierHard
	case roll <= hard+medium:
		return TierMedium
	default:
		return TierEasy
	}
}

// sampleCandidate assembles one question for the given operation.
// Unrecognized operations fall back to addition and the question is
// relabelled accordingly.
func (g *Generator) sampleCandidate(op Operation, maxOperand, dial int) Question {
	switch op {
	case OpSubtraction:
		a, b := g.sampleOperandPair(maxOperand, dial)
		if a < b {
			a, b = b, a
		}
		return Question{Operand1: a, Operand2: b, Operation: OpSubtraction, Answer: a - b}

	case OpMultiplication:
		bound := min(maxOperand, timesTableCap)
		a, b := g.sampleOperandPair(bound, dial)
		return Question{Operand1: a, Operand2: b, Operation: OpMultiplication, Answer: a * b}

	case OpDivision:
		return g.sampleDivision(maxOperand, dial)

	default:
		// Addition, and the fallback for anything unrecognized. The sum is
		// deliberately not re-checked against maxOperand; sums may exceed it.
		a, b := g.sampleOperandPair(maxOperand, dial)
		return Question{Operand1: a, Operand2: b, Operation: OpAddition, Answer: a + b}
	}
}

// sampleOperandPair draws two operands in [1, bound] using the
// dial-dependent strategy: low dials force one side small, mid dials
// mostly sample freely, dial 5 always samples freely.
func (g *Generator) sampleOperandPair(bound, dial int) (int, int) {
	free := func() (int, int) {
		return g.sampler.IntBetween(1, bound), g.sampler.IntBetween(1, bound)
	}
	anchored := func() (int, int) {
		small := g.sampler.IntBetween(1, min(9, bound))
		wide := g.sampler.IntBetween(1, bound)
		if g.sampler.Chance(0.5) {
			return small, wide
		}
		return wide, small
	}

	switch {
	case dial <= 2:
		return anchored()
	case dial <= 4:
		if g.sampler.Chance(0.7) {
			return free()
		}
		return anchored()
	default:
		return free()
	}
}

// sampleDivision picks the divisor and the answer directly and derives
// the dividend as an exact multiple, so division always comes out even.
// The quotient is capped so the dividend stays within the times-table
// bound.
func (g *Generator) sampleDivision(maxOperand, dial int) Question {
	divMax := min(maxOperand, timesTableCap)

	restricted := func() (int, int) {
		divisor := g.sampler.IntBetween(2, min(5, divMax))
		answer := g.sampler.IntBetween(1, min(5, max(1, divMax/divisor)))
		return divisor, answer
	}
	free := func() (int, int) {
		divisor := g.sampler.IntBetween(2, divMax)
		answer := g.sampler.IntBetween(1, max(1, divMax/divisor))
		return divisor, answer
	}

	var divisor, answer int
	switch {
	case dial <= 2:
		divisor, answer = restricted()
	case dial <= 4:
		if g.sampler.Chance(0.7) {
			divisor, answer = free()
		} else {
			divisor, answer = restricted()
		}
	default:
		divisor, answer = free()
	}

	return Question{
		Operand1:  divisor * answer,
		Operand2:  divisor,
		Operation: OpDivision,
		Answer:    answer,
	}
}

// seenInBatch reports whether an identical (operand1, operand2, operation)
// triple was already accepted in this batch.
func seenInBatch(history []Question, candidate Question) bool {
	for _, q := range history {
		if q.Operand1 == candidate.Operand1 &&
			q.Operand2 == candidate.Operand2 &&
			q.Operation == candidate.Operation {
			return true
		}
	}
	return false
}

// tooSimilar guards against runs like 3×9 followed by 3×8: same operation
// and at least one shared operand value.
func tooSimilar(prev, candidate Question) bool {
	if prev.Operation != candidate.Operation {
		return false
	}
	return prev.Operand1 == candidate.Operand1 ||
		prev.Operand1 == candidate.Operand2 ||
		prev.Operand2 == candidate.Operand1 ||
		prev.Operand2 == candidate.Operand2
}
