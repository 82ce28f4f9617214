package orbits

import (
	"sync"
)

type Category uint8

const (
	Captured  Category = iota // orbit stayed bounded for all iterations
	Escaped                   // orbit left the bailout disk
	Offscreen                 // orbit recorded points but none landed in the image
	numCategories
)

var categoryNames = [numCategories]string{"captured", "escaped", "offscreen"}

func (c Category) String() string {
	if c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// orbitTally is a per batch count of orbit categories.
type orbitTally [numCategories]int64

type orbitLogCache struct {
	mu     sync.Mutex
	counts orbitTally
}

var orbitCache = &orbitLogCache{}

func logOrbits(t *orbitTally) {
	orbitCache.mu.Lock()
	defer orbitCache.mu.Unlock()
	for c := range t {
		orbitCache.counts[c] += t[c]
	}
}

func resetOrbitLog() {
	orbitCache.mu.Lock()
	orbitCache.counts = orbitTally{}
	orbitCache.mu.Unlock()
}

func orbitCounts() orbitTally {
	orbitCache.mu.Lock()
	defer orbitCache.mu.Unlock()
	return orbitCache.counts
}

func orbitStats() {
	counts := orbitCounts()
	for c, n := range counts {
		Logger().Debugf("Orbit type %s: %d orbits", Category(c), n)
	}
}
