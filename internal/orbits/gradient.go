package orbits

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type ColorStop struct {
	Pos     Real
	R, G, B uint8
}

// Gradient is a piecewise linear color ramp; stops are sorted by position.
type Gradient []ColorStop

var DefaultGradient = Gradient{
	{0, 20, 8, 30},
	{0.1, 160, 30, 200},
	{0.25, 20, 160, 230},
	{0.4, 60, 230, 80},
	{0.55, 255, 230, 20},
	{0.7, 255, 120, 20},
	{0.85, 255, 40, 60},
	{1, 20, 2, 10},
}

// GradientStop is the parameter file form of a ColorStop.
type GradientStop struct {
	Pos   Real   `json:"pos" yaml:"pos"`
	Color string `json:"color" yaml:"color"`
}

// NewGradient sorts a copy of stops by position.
func NewGradient(stops []ColorStop) (Gradient, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: no stops", ErrInvalidGradient)
	}
	g := make(Gradient, len(stops))
	copy(g, stops)
	for _, s := range g {
		if !isFinite(s.Pos) {
			return nil, fmt.Errorf("%w: stop position %v", ErrInvalidGradient, s.Pos)
		}
	}
	sort.SliceStable(g, func(i, j int) bool { return g[i].Pos < g[j].Pos })
	return g, nil
}

// ParseGradient builds a gradient from "#rrggbb" stops.
func ParseGradient(stops []GradientStop) (Gradient, error) {
	cs := make([]ColorStop, 0, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: stop %d: %v", ErrInvalidGradient, i, err)
		}
		r, g, b := c.RGB255()
		cs = append(cs, ColorStop{Pos: s.Pos, R: r, G: g, B: b})
	}
	return NewGradient(cs)
}

// Stops returns the gradient in parameter file form.
func (g Gradient) Stops() []GradientStop {
	out := make([]GradientStop, len(g))
	for i, s := range g {
		c := colorful.Color{R: Real(s.R) / 255, G: Real(s.G) / 255, B: Real(s.B) / 255}
		out[i] = GradientStop{Pos: s.Pos, Color: c.Hex()}
	}
	return out
}

func (s ColorStop) rgba() color.RGBA { return color.RGBA{s.R, s.G, s.B, 0xff} }

// ColorAt interpolates the gradient at t, clamping to the end colors. An
// empty gradient gives transparent black.
func (g Gradient) ColorAt(t Real) color.RGBA {
	if len(g) == 0 {
		return color.RGBA{}
	}
	first, last := g[0], g[len(g)-1]
	if !(t > first.Pos) {
		return first.rgba()
	}
	if t >= last.Pos {
		return last.rgba()
	}
	i := sort.Search(len(g), func(k int) bool { return g[k].Pos > t }) - 1
	a, b := g[i], g[i+1]
	w := (t - a.Pos) / (b.Pos - a.Pos)
	return color.RGBA{lerp8(a.R, b.R, w), lerp8(a.G, b.G, w), lerp8(a.B, b.B, w), 0xff}
}

func lerp8(a, b uint8, w Real) uint8 {
	v := math.Round(Real(a)*(1-w) + Real(b)*w)
	return uint8(math.Max(0, math.Min(255, v)))
}
