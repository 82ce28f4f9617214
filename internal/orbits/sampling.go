package orbits

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// SamplingLevel selects how many sample points are taken per pixel.
type SamplingLevel int

const (
	Single SamplingLevel = iota
	Low
	Medium
	High
	Ultra
	Extreme
)

var samplingLevelNames = []string{"single", "low", "medium", "high", "ultra", "extreme"}

var samplingLevelCounts = []int{1, 4, 8, 16, 32, 64}

func (l SamplingLevel) String() string { return enumName(samplingLevelNames, l) }

// Count returns the number of points per pixel, or 0 for an unknown level.
func (l SamplingLevel) Count() int {
	if int(l) < 0 || int(l) >= len(samplingLevelCounts) {
		return 0
	}
	return samplingLevelCounts[l]
}

func (l SamplingLevel) MarshalText() ([]byte, error) {
	if l.Count() == 0 {
		return nil, ErrUnknownSampling
	}
	return []byte(l.String()), nil
}

func (l *SamplingLevel) UnmarshalText(b []byte) error {
	v, err := parseEnum[SamplingLevel](samplingLevelNames, string(b), ErrUnknownSampling)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Sampling controls the per pixel sample set.
type Sampling struct {
	Level         SamplingLevel `json:"level" yaml:"level"`
	RandomOffsets bool          `json:"randomOffsets,omitempty" yaml:"randomOffsets,omitempty"`
	Seed          int64         `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// SamplePoint is a point of the golden-angle spiral around a pixel.
// Radius is normalized to [0,1] and Angle is in radians.
type SamplePoint struct {
	Radius, Angle, Weight Real
}

// Offset returns the displacement from the pixel position, in pixels.
func (s SamplePoint) Offset() (dx, dy Real) {
	r := s.Radius * OuterRadius
	return r * math.Cos(s.Angle), r * math.Sin(s.Angle)
}

// Jitter perturbs the point by up to half a spiral cell for a set of n points.
func (s SamplePoint) Jitter(rng *rand.Rand, n int) SamplePoint {
	inv := 1 / math.Sqrt(Real(imax(n, 1)))
	s.Radius += (rng.Float64() - 0.5) * inv
	s.Angle += (rng.Float64() - 0.5) * 2 * math.Pi * inv
	if s.Radius < 0 {
		s.Radius = -s.Radius
	}
	return s
}

// GenerateSamplingPoints lays the points of level on a golden-angle spiral,
// weighting the center above the rim. Weights sum to 1.
func GenerateSamplingPoints(level SamplingLevel) ([]SamplePoint, error) {
	n := level.Count()
	if n == 0 {
		return nil, ErrUnknownSampling
	}
	return spiralPoints(n, MinWeight)
}

func spiralPoints(n int, minWeight Real) ([]SamplePoint, error) {
	pts := make([]SamplePoint, n)
	w := make([]Real, n)
	for i := range pts {
		x := Real(i) / GoldenRatio
		x -= math.Floor(x)
		y := 0.0
		if n > 1 {
			y = Real(i) / Real(n-1)
		}
		w[i] = 1 + (minWeight-1)*y
		pts[i] = SamplePoint{Radius: y, Angle: 2 * math.Pi * x}
	}
	sum := floats.Sum(w)
	if sum == 0 || !isFinite(sum) {
		return nil, ErrZeroWeights
	}
	for i := range pts {
		pts[i].Weight = w[i] / sum
	}
	return pts, nil
}
