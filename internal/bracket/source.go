package bracket

//go:generate go tool mockgen -destination=source_mock_test.go -package=bracket -source=source.go

import "math/rand"

// Source supplies the randomness for every draw in a tournament. A run only
// ever calls IntN, in round order, so a deterministic Source reproduces a
// tournament exactly.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) IntN(n int) int {
	return s.rng.Intn(n)
}
