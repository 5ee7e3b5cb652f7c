package quizgen

import "math/rand"

// Sampler produces bounded random integers and shuffles. It carries no
// domain knowledge; everything arithmetic lives in the generator.
//
// The random source is explicitly seeded so batches are reproducible in
// tests. A Sampler is not safe for concurrent use.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler creates a Sampler seeded with the given value.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniformly distributed integer in [min, max],
// both ends inclusive. The caller guarantees min <= max; behavior is
// undefined otherwise.
func (s *Sampler) IntBetween(min, max int) int {
	return min + s.rnd.Intn(max-min+1)
}

// Chance returns true with probability p (clamped to [0, 1]).
func (s *Sampler) Chance(p float64) bool {
	return s.rnd.Float64() < p
}

// Pick returns a uniformly chosen element of seq. seq must be non-empty.
func Pick[T any](s *Sampler, seq []T) T {
	return seq[s.rnd.Intn(len(seq))]
}

// Shuffle returns a new Fisher-Yates permutation of seq. The input is
// left unmodified.
func Shuffle[T any](s *Sampler, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
