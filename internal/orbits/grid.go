package orbits

import "gonum.org/v1/gonum/floats"

// DensityGrid accumulates weighted orbit hits per pixel, row-major.
type DensityGrid struct {
	W, H int
	Buf  []Real
}

func NewDensityGrid(w, h int) *DensityGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &DensityGrid{W: w, H: h, Buf: make([]Real, w*h)}
}

func (g *DensityGrid) idx(i, j int) int { return j*g.W + i }

func (g *DensityGrid) At(i, j int) Real { return g.Buf[g.idx(i, j)] }

func (g *DensityGrid) Empty() bool { return len(g.Buf) == 0 }

// Max returns the largest density, 0 for an empty grid.
func (g *DensityGrid) Max() Real {
	if g.Empty() {
		return 0
	}
	return floats.Max(g.Buf)
}

func (g *DensityGrid) Min() Real {
	if g.Empty() {
		return 0
	}
	return floats.Min(g.Buf)
}

// Sum is the total mass deposited in the grid.
func (g *DensityGrid) Sum() Real { return floats.Sum(g.Buf) }
