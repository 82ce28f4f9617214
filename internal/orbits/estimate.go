package orbits

import (
	"math/rand"
	"sync"
	"time"
)

// estimateOrbitLength samples trials random points of the view and returns
// the mean number of orbit points recorded per sample.
func estimateOrbitLength(f Fractal, view View, maxIter uint32, trials int) Real {
	if trials <= 0 || view.W <= 0 || view.H <= 0 {
		return 0
	}
	nw := workers()
	if nw > trials {
		nw = trials
	}

	per, rem := trials/nw, trials%nw
	var wg sync.WaitGroup
	lenCh := make(chan int, nw)

	for w := 0; w < nw; w++ {
		n := per
		if w < rem {
			n++
		}
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(wid, n int) {
			defer wg.Done()
			seed := time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))

			var o Orbits
			local := 0
			for i := 0; i < n; i += Lanes {
				var cs [Lanes]complex128
				for l := range cs {
					p := Point2{rng.Float64() * Real(view.W), rng.Float64() * Real(view.H)}
					cs[l] = view.PixelToPlane(p).Complex()
				}
				f.SampleInto(FromLanes(cs), maxIter, &o)
				for l := 0; l < Lanes && i+l < n; l++ {
					local += len(o[l])
				}
			}
			lenCh <- local
		}(w, n)
	}

	wg.Wait()
	close(lenCh)

	total := 0
	for c := range lenCh {
		total += c
	}
	return Real(total) / Real(trials)
}
