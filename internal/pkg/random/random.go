package random

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random - source of uniform choices, swapped for MockRandom in tests.
type Random interface {
	// Intn returns an int in [0, n). n must be positive.
	Intn(n int) int
}

type seededRandom struct {
	rnd *rand.Rand
}

// New - seeded PCG source. Zero seed means "seed from the clock".
func New(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
	}

	return &seededRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (that *seededRandom) Intn(n int) int {
	return that.rnd.Intn(n)
}

// Pick - uniform element of a non-empty slice.
func Pick[T any](rnd Random, items []T) T {
	return items[rnd.Intn(len(items))]
}
