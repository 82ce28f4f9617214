package orbits

type Real = float64

const (
	Lanes          = 4   // width of the lane vector types
	Bailout        = 4.0 // squared norm past which an orbit has escaped
	HistogramSize  = 1_000_000
	OuterRadius    = 1.2 // sampling spiral radius, in pixels
	MinWeight      = 0.9 // importance weight at the spiral rim
	GoldenRatio    = 1.618033988749895
	ChunkHitBudget = 1 << 24 // max hits in flight per chunk
	BatchPixels    = 64      // pixels per worker task
	ProbeOrbits    = 4096    // samples used to estimate the mean orbit length
	ImgWidth       = 512
	ImgHeight      = 512
	Zoom           = 4.0
	MaxIter        = 100
	GIFDelay       = 5 // 100ths of a second per frame
	Out            = "out.png"
)

// orbit windows up to this size live on the stack
const maxWindowOnStack = 8
