package background

import (
	"math/rand"
	"time"
)

// newRand builds a private random source so generators never share mutable
// state. A zero seed derives one from the clock, making output cosmetic and
// non-reproducible; any other seed gives deterministic output for tests.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
