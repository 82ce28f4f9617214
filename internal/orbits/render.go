package orbits

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

// chunkHitBudget bounds the hits held in memory by one chunk.
var chunkHitBudget = ChunkHitBudget

// hitRun is a list of grid cells hit by one orbit, all with the same weight.
type hitRun struct {
	w   Real
	idx []int32
}

type batchResult struct {
	seq  int
	runs []hitRun
}

type renderer struct {
	f        Fractal
	view     View
	points   []SamplePoint
	maxIter  uint32
	groups   int
	jitter   bool
	seed     int64
	grid     *DensityGrid
	progress *Progress
	nextPct  Real
}

// RenderRawImage evaluates every sample point of every pixel of view and
// accumulates the weighted orbit points into a density grid. Batches are
// applied in order, so the result does not depend on Workers or chunk size.
func RenderRawImage(p *Params, view View, points []SamplePoint, progress *Progress) (*DensityGrid, error) {
	if err := p.Fractal.Validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if !view.Valid() {
		return nil, fmt.Errorf("%w: zoom=%g center=(%g, %g) rotation=%g",
			ErrInvalidView, view.Zoom, view.Center.X, view.Center.Y, view.RotationDeg)
	}
	grid := NewDensityGrid(view.W, view.H)
	if grid.Empty() {
		return grid, nil
	}
	if int64(len(grid.Buf)) > math.MaxInt32 {
		return nil, fmt.Errorf("image too large: %dx%d", view.W, view.H)
	}
	// sample points are evaluated Lanes at a time, the last group padded
	groups := (len(points) + Lanes - 1) / Lanes
	if progress == nil {
		progress = NewProgress(int64(len(grid.Buf)) * int64(groups*Lanes))
	}
	seed := p.Sampling.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &renderer{
		f:        p.Fractal,
		view:     view,
		points:   points,
		maxIter:  uint32(imax(p.MaxIter, 0)),
		groups:   groups,
		jitter:   p.Sampling.RandomOffsets,
		seed:     seed,
		grid:     grid,
		progress: progress,
		nextPct:  math.Floor(progress.Percent()) + 1,
	}

	// 1) size chunks so one chunk holds at most chunkHitBudget hits;
	//    chunks are whole batches so that batch boundaries and seeds are fixed
	perPixel := imax(1, groups*Lanes*imax(1, p.MaxIter))
	chunk := imax(1, chunkHitBudget/perPixel)
	chunk = (chunk + BatchPixels - 1) / BatchPixels * BatchPixels
	DebugLogOnce("Render layout: %d sample points in %d lane groups, %d pixels per chunk, %d workers",
		len(points), groups, chunk, workers())

	// 2) per frame orbit statistics
	if Debug {
		resetOrbitLog()
	}

	// 3) render chunk by chunk
	total := len(grid.Buf)
	for start := 0; start < total; start += chunk {
		if err := r.renderChunk(start, min(total, start+chunk)); err != nil {
			return nil, err
		}
	}
	if Debug {
		orbitStats()
	}
	return grid, nil
}

// renderChunk renders pixels [start, end) as BatchPixels sized batches on the
// worker pool and folds them into the grid in batch order.
func (r *renderer) renderChunk(start, end int) error {
	nBatches := (end - start + BatchPixels - 1) / BatchPixels
	results := make(chan batchResult, workers())
	done := make(chan struct{})

	// single consumer: the only goroutine touching the grid
	go func() {
		defer close(done)
		pending := make(map[int][]hitRun)
		next := 0
		for res := range results {
			// park out of order batches until their predecessors arrive
			pending[res.seq] = res.runs
			for runs, ok := pending[next]; ok; runs, ok = pending[next] {
				r.apply(runs)
				delete(pending, next)
				next++
			}
			r.logProgress()
		}
	}()

	// producers: at most workers() batches in flight
	var g errgroup.Group
	g.SetLimit(workers())
	for b := 0; b < nBatches; b++ {
		b := b
		lo := start + b*BatchPixels
		hi := min(end, lo+BatchPixels)
		g.Go(func() error {
			results <- batchResult{seq: b, runs: r.renderBatch(lo, hi)}
			return nil
		})
	}
	// all producers returned, let the consumer drain
	err := g.Wait()
	close(results)
	<-done
	return err
}

// apply adds the weight of every run to each cell it hit. Consumer only.
func (r *renderer) apply(runs []hitRun) {
	buf := r.grid.Buf
	for _, run := range runs {
		for _, i := range run.idx {
			buf[i] += run.w
		}
	}
}

// logProgress logs once per whole percent.
func (r *renderer) logProgress() {
	pct := r.progress.Percent()
	if pct >= r.nextPct {
		Logger().Infof("[PROGRESS] %.2f%%", pct)
		r.nextPct = math.Floor(pct) + 1
	}
}

// renderBatch evaluates pixels [lo, hi). lo is always a multiple of BatchPixels.
func (r *renderer) renderBatch(lo, hi int) []hitRun {
	// seed depends on the batch index only, never on the worker
	var rng *rand.Rand
	if r.jitter {
		rng = rand.New(rand.NewSource(r.seed ^ int64(uint64(lo/BatchPixels)*0x9e3779b97f4a7c15)))
	}
	var (
		runs  []hitRun
		o     Orbits
		tally orbitTally
	)
	n := len(r.points)
	W := r.view.W
	for px := lo; px < hi; px++ {
		pc := Point2{Real(px%W) + 0.5, Real(px/W) + 0.5}
		for g := 0; g < r.groups; g++ {
			// 1) fill the lanes: sample offset, jitter, pixel -> plane
			//    padding lanes repeat earlier points and are dropped below
			var cs [Lanes]complex128
			var ws [Lanes]Real
			var live [Lanes]bool
			for l := 0; l < Lanes; l++ {
				k := g*Lanes + l
				sp := r.points[k%n]
				if rng != nil {
					sp = sp.Jitter(rng, n)
				}
				dx, dy := sp.Offset()
				cs[l] = r.view.PixelToPlane(pc.Add(Point2{dx, dy})).Complex()
				ws[l], live[l] = sp.Weight, k < n
			}
			// 2) iterate all lanes together
			r.f.SampleInto(FromLanes(cs), r.maxIter, &o)

			// 3) project each orbit back, with (re, im) -> (-im, re)
			for l := 0; l < Lanes; l++ {
				if !live[l] {
					continue
				}
				run := hitRun{w: ws[l]}
				for _, z := range o[l] {
					q := r.view.PlaneToPixel(Point2{-imag(z), real(z)})
					if i, j, ok := r.view.Cell(q); ok {
						run.idx = append(run.idx, int32(j*W+i))
					}
				}
				if len(run.idx) > 0 {
					runs = append(runs, run)
				}
				if Debug {
					tally[classifyOrbit(len(o[l]), len(run.idx), r.maxIter)]++
				}
			}
			r.progress.Add(Lanes)
		}
	}
	if Debug {
		logOrbits(&tally)
	}
	return runs
}

// classifyOrbit buckets one lane for the debug tally.
func classifyOrbit(points, hits int, maxIter uint32) Category {
	switch {
	case points > 0 && hits == 0:
		return Offscreen
	case uint32(points) == maxIter:
		return Captured
	default:
		return Escaped
	}
}
