package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EmptyOperationsFails(t *testing.T) {
	g := New(1)
	qs, err := g.Generate(Settings{MaxOperand: 20, QuestionCount: 5, Dial: 3})
	require.ErrorIs(t, err, ErrNoOperations)
	assert.Nil(t, qs, "no partial output on invalid settings")
}

func TestGenerate_CountAndNonNegativeAnswers(t *testing.T) {
	g := New(17)
	qs, err := g.Generate(Settings{
		Operations:    AllOperations(),
		MaxOperand:    25,
		QuestionCount: 40,
		Dial:          3,
	})
	require.NoError(t, err)
	require.Len(t, qs, 40)

	for i, q := range qs {
		assert.GreaterOrEqual(t, q.Answer, 0, "question %d: %s", i, Format(q))
		assert.Positive(t, q.Operand1, "question %d", i)
		assert.Positive(t, q.Operand2, "question %d", i)
		assert.False(t, q.Answered, "questions are emitted unanswered")
		assert.Zero(t, q.TimeElapsed)
	}
}

func TestGenerate_SubtractionNeverGoesNegative(t *testing.T) {
	g := New(5)
	qs, err := g.Generate(Settings{
		Operations:    []Operation{OpSubtraction},
		MaxOperand:    50,
		QuestionCount: 60,
		Dial:          4,
	})
	require.NoError(t, err)
	for _, q := range qs {
		assert.GreaterOrEqual(t, q.Operand1, q.Operand2, "%s", Format(q))
		assert.Equal(t, q.Operand1-q.Operand2, q.Answer)
	}
}

func TestGenerate_DivisionIsExactAndBounded(t *testing.T) {
	g := New(99)
	qs, err := g.Generate(Settings{
		Operations:    []Operation{OpDivision},
		MaxOperand:    10,
		QuestionCount: 5,
		Dial:          3,
	})
	require.NoError(t, err)
	require.Len(t, qs, 5)

	for _, q := range qs {
		require.NotZero(t, q.Operand2, "%s", Format(q))
		assert.Zero(t, q.Operand1%q.Operand2, "%s must divide exactly", Format(q))
		assert.Equal(t, q.Operand2*q.Answer, q.Operand1, "%s", Format(q))
		assert.LessOrEqual(t, q.Operand1, 10, "%s", Format(q))
	}
}

func TestGenerate_MultiplicationRespectsTimesTableCap(t *testing.T) {
	g := New(12)
	qs, err := g.Generate(Settings{
		Operations:    []Operation{OpMultiplication},
		MaxOperand:    100,
		QuestionCount: 50,
		Dial:          5,
	})
	require.NoError(t, err)
	for _, q := range qs {
		assert.LessOrEqual(t, q.Operand1, timesTableCap, "%s", Format(q))
		assert.LessOrEqual(t, q.Operand2, timesTableCap, "%s", Format(q))
	}
}

// Sums are deliberately not re-checked against MaxOperand, so with a high
// dial the batch is expected to contain at least one sum above the bound.
// This pins down accepted behavior rather than an oversight.
func TestGenerate_AdditionMayExceedMaxOperand(t *testing.T) {
	g := New(3)
	qs, err := g.Generate(Settings{
		Operations:    []Operation{OpAddition},
		MaxOperand:    20,
		QuestionCount: 80,
		Dial:          5,
	})
	require.NoError(t, err)

	exceeded := false
	for _, q := range qs {
		assert.LessOrEqual(t, q.Operand1, 20)
		assert.LessOrEqual(t, q.Operand2, 20)
		if q.Answer > 20 {
			exceeded = true
		}
	}
	assert.True(t, exceeded, "expected at least one sum above MaxOperand in 80 questions at dial 5")
}

func TestGenerate_NoDuplicateTriplesInRoomyBatch(t *testing.T) {
	g := New(21)
	qs, err := g.Generate(Settings{
		Operations:    AllOperations(),
		MaxOperand:    50,
		QuestionCount: 15,
		Dial:          3,
	})
	require.NoError(t, err)

	type triple struct {
		a, b int
		op   Operation
	}
	seen := make(map[triple]bool)
	for _, q := range qs {
		k := triple{q.Operand1, q.Operand2, q.Operation}
		assert.False(t, seen[k], "duplicate question %s", Format(q))
		seen[k] = true
	}
}

func TestGenerate_PathologicalSettingsStillComplete(t *testing.T) {
	// The constraint space here is tiny, so the fallback path must fire
	// and still deliver a full batch without looping forever.
	g := New(8)
	qs, err := g.Generate(Settings{
		Operations:    []Operation{OpMultiplication},
		MaxOperand:    3,
		QuestionCount: 50,
		Dial:          5,
	})
	require.NoError(t, err)
	assert.Len(t, qs, 50)
}

func TestGenerate_SameSeedSameBatch(t *testing.T) {
	settings := Settings{
		Operations:    AllOperations(),
		MaxOperand:    30,
		QuestionCount: 20,
		Dial:          2,
	}

	first, err := New(1234).Generate(settings)
	require.NoError(t, err)
	second, err := New(1234).Generate(settings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTargetTier_DialFiveAlwaysHard(t *testing.T) {
	g := New(77)
	for i := 0; i < 500; i++ {
		if got := g.targetTier(5); got != TierHard {
			t.Fatalf("targetTier(5) = %v on draw %d, want %v", got, i, TierHard)
		}
	}
}

func TestTargetTier_CoversAllTiersAtDialOne(t *testing.T) {
	g := New(55)
	seen := make(map[Tier]int)
	for i := 0; i < 2000; i++ {
		seen[g.targetTier(1)]++
	}
	// 50/30/20 split: all three tiers should show up in 2000 draws.
	assert.Positive(t, seen[TierHard])
	assert.Positive(t, seen[TierMedium])
	assert.Positive(t, seen[TierEasy])
	assert.Greater(t, seen[TierHard], seen[TierEasy])
}

func TestSampleCandidate_UnknownOperationRelabelsAsAddition(t *testing.T) {
	g := New(2)
	q := g.sampleCandidate(Operation("modulo"), 20, 3)
	assert.Equal(t, OpAddition, q.Operation)
	assert.Equal(t, q.Operand1+q.Operand2, q.Answer)
}

func TestTooSimilar(t *testing.T) {
	tests := []struct {
		name string
		prev Question
		next Question
		want bool
	}{
		{
			"same op shared left operand",
			Question{Operand1: 3, Operand2: 9, Operation: OpMultiplication},
			Question{Operand1: 3, Operand2: 8, Operation: OpMultiplication},
			true,
		},
		{
			"same op crossed operand",
			Question{Operand1: 3, Operand2: 9, Operation: OpMultiplication},
			Question{Operand1: 8, Operand2: 3, Operation: OpMultiplication},
			true,
		},
		{
			"different op shared operand",
			Question{Operand1: 3, Operand2: 9, Operation: OpMultiplication},
			Question{Operand1: 3, Operand2: 9, Operation: OpAddition},
			false,
		},
		{
			"same op disjoint operands",
			Question{Operand1: 3, Operand2: 9, Operation: OpMultiplication},
			Question{Operand1: 4, Operand2: 8, Operation: OpMultiplication},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tooSimilar(tt.prev, tt.next))
		})
	}
}

func TestGenerate_AdjacentQuestionsNotSimilarInRoomyBatch(t *testing.T) {
	g := New(31)
	qs, err := g.Generate(Settings{
		Operations:    AllOperations(),
		MaxOperand:    60,
		QuestionCount: 12,
		Dial:          2,
	})
	require.NoError(t, err)

	for i := 1; i < len(qs); i++ {
		assert.False(t, tooSimilar(qs[i-1], qs[i]),
			"questions %d and %d: %s then %s", i-1, i, Format(qs[i-1]), Format(qs[i]))
	}
}

func TestQuestionRecord_WriteOnce(t *testing.T) {
	q := Question{Operand1: 4, Operand2: 3, Operation: OpAddition, Answer: 7}

	q.Record(7, 0)
	require.True(t, q.Answered)
	require.True(t, q.Correct)

	// A second write must not overwrite the first.
	q.Record(99, 0)
	assert.Equal(t, 7, q.UserAnswer)
	assert.True(t, q.Correct)
}

func TestQuestionRecordTimeout(t *testing.T) {
	q := Question{Operand1: 9, Operand2: 3, Operation: OpDivision, Answer: 3}
	q.RecordTimeout(0)
	assert.True(t, q.Answered)
	assert.False(t, q.Correct)
}
