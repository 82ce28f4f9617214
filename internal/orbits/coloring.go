package orbits

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

type ColoringKind int

const (
	CumulativeHistogram ColoringKind = iota
	MinMaxNorm
	BlackAndWhite
)

var coloringKindNames = []string{"cumulativeHistogram", "minMaxNorm", "blackAndWhite"}

func (k ColoringKind) String() string { return enumName(coloringKindNames, k) }

func (k ColoringKind) MarshalText() ([]byte, error) {
	if int(k) < 0 || int(k) >= len(coloringKindNames) {
		return nil, ErrUnknownColoring
	}
	return []byte(k.String()), nil
}

func (k *ColoringKind) UnmarshalText(b []byte) error {
	v, err := parseEnum[ColoringKind](coloringKindNames, string(b), ErrUnknownColoring)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type MapKind int

const (
	Linear MapKind = iota
	Squared
	Powf
)

var mapKindNames = []string{"linear", "squared", "powf"}

func (k MapKind) String() string { return enumName(mapKindNames, k) }

func (k MapKind) MarshalText() ([]byte, error) {
	if int(k) < 0 || int(k) >= len(mapKindNames) {
		return nil, ErrUnknownMap
	}
	return []byte(k.String()), nil
}

func (k *MapKind) UnmarshalText(b []byte) error {
	v, err := parseEnum[MapKind](mapKindNames, string(b), ErrUnknownMap)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MapValue reshapes a normalized value.
type MapValue struct {
	Kind MapKind `json:"kind" yaml:"kind"`
	Exp  Real    `json:"exp,omitempty" yaml:"exp,omitempty"`
}

func (m MapValue) Apply(t Real) Real {
	switch m.Kind {
	case Squared:
		return t * t
	case Powf:
		t = math.Pow(t, m.Exp)
		if !isNormal(t) {
			return 0
		}
		return t
	default:
		return t
	}
}

// ColoringMode selects how densities are normalized before the gradient
// lookup. Min and Max override the grid extremes in minMaxNorm mode.
type ColoringMode struct {
	Kind ColoringKind `json:"kind" yaml:"kind"`
	Map  MapValue     `json:"map" yaml:"map"`
	Min  *Real        `json:"min,omitempty" yaml:"min,omitempty"`
	Max  *Real        `json:"max,omitempty" yaml:"max,omitempty"`
}

func (m ColoringMode) Validate() error {
	if int(m.Kind) < 0 || int(m.Kind) >= len(coloringKindNames) {
		return ErrUnknownColoring
	}
	if int(m.Map.Kind) < 0 || int(m.Map.Kind) >= len(mapKindNames) {
		return ErrUnknownMap
	}
	return nil
}

// ColorRawImage colors grid with the coloring mode and gradient of p.
func ColorRawImage(p *Params, grid *DensityGrid) (*image.RGBA, error) {
	g := DefaultGradient
	if len(p.CustomGradient) > 0 {
		var err error
		if g, err = ParseGradient(p.CustomGradient); err != nil {
			return nil, err
		}
	}
	return ColorDensity(grid, p.Coloring, g)
}

// ColorDensity normalizes the densities of grid to [0,1] and looks them up
// in gradient.
func ColorDensity(grid *DensityGrid, mode ColoringMode, gradient Gradient) (*image.RGBA, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if len(gradient) == 0 {
		return nil, fmt.Errorf("%w: no stops", ErrInvalidGradient)
	}
	img := image.NewRGBA(image.Rect(0, 0, grid.W, grid.H))
	if grid.Empty() {
		return img, nil
	}

	var t func(v Real) Real
	switch mode.Kind {
	case CumulativeHistogram:
		maxV := grid.Max()
		if maxV <= 0 {
			maxV = 1
		}
		norm := make([]Real, len(grid.Buf))
		for i, v := range grid.Buf {
			norm[i] = v / maxV
		}
		cum := CumulateHistogram(ComputeHistogram(norm, HistogramSize))
		t = func(v Real) Real {
			return mode.Map.Apply(HistogramValue(cum, v/maxV))
		}
	case MinMaxNorm:
		lo, hi := grid.Min(), grid.Max()
		if mode.Min != nil {
			lo = *mode.Min
		}
		if mode.Max != nil {
			hi = *mode.Max
		}
		t = func(v Real) Real {
			if hi == lo {
				return mode.Map.Apply(0)
			}
			return mode.Map.Apply((v - lo) / (hi - lo))
		}
	case BlackAndWhite:
		for j := 0; j < grid.H; j++ {
			for i := 0; i < grid.W; i++ {
				c := color.RGBA{0xff, 0xff, 0xff, 0xff}
				if grid.At(i, j) > 0 {
					c = color.RGBA{0, 0, 0, 0xff}
				}
				img.SetRGBA(i, j, c)
			}
		}
		return img, nil
	}

	for j := 0; j < grid.H; j++ {
		for i := 0; i < grid.W; i++ {
			img.SetRGBA(i, j, gradient.ColorAt(t(grid.At(i, j))))
		}
	}
	return img, nil
}
