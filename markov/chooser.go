package markov

import (
	"math/rand"
	"time"
)

// Chooser picks a position in a finite sequence. Intn must return a value in
// [0, n) for n > 0. *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// NewChooser returns a pseudo-random Chooser. A zero seed is replaced with
// the current time.
func NewChooser(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

func choose[T any](chooser Chooser, items []T) T {
	return items[chooser.Intn(len(items))]
}
