package orbits

// FractalKind selects the recurrence of a Fractal.
type FractalKind int

const (
	Mandelbrot FractalKind = iota
	MandelbrotCustomExp
	SecondDegreeWithGrowingExponent
	SecondDegreeWithGrowingExponentParam
	SecondDegreeAlternating
	ThirdDegreeWithGrowingExponent
	NthDegreeWithGrowingExponent
	ThirdDegreePairs
	SecondDegreeThirtySevenBlend
)

var fractalKindNames = []string{
	"mandelbrot",
	"mandelbrotCustomExp",
	"secondDegreeWithGrowingExponent",
	"secondDegreeWithGrowingExponentParam",
	"secondDegreeAlternating",
	"thirdDegreeWithGrowingExponent",
	"nthDegreeWithGrowingExponent",
	"thirdDegreePairs",
	"secondDegreeThirtySevenBlend",
}

func (k FractalKind) String() string { return enumName(fractalKindNames, k) }

func (k FractalKind) MarshalText() ([]byte, error) {
	if int(k) < 0 || int(k) >= len(fractalKindNames) {
		return nil, ErrUnknownFractal
	}
	return []byte(k.String()), nil
}

func (k *FractalKind) UnmarshalText(b []byte) error {
	v, err := parseEnum[FractalKind](fractalKindNames, string(b), ErrUnknownFractal)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Fractal is an escape-time recurrence over a window of previous iterates.
// N is the window size of the n-ary kind, ARe/AIm the coefficient of the
// parametrized kind and Exp the exponent of the custom exponent kind.
type Fractal struct {
	Kind FractalKind `json:"kind" yaml:"kind"`
	N    int         `json:"n,omitempty" yaml:"n,omitempty"`
	ARe  Real        `json:"aRe,omitempty" yaml:"aRe,omitempty"`
	AIm  Real        `json:"aIm,omitempty" yaml:"aIm,omitempty"`
	Exp  Real        `json:"exp,omitempty" yaml:"exp,omitempty"`
}

// Orbits collects the visited points of every lane.
type Orbits [Lanes][]complex128

func (f Fractal) Validate() error {
	if int(f.Kind) < 0 || int(f.Kind) >= len(fractalKindNames) {
		return ErrUnknownFractal
	}
	if f.Kind == NthDegreeWithGrowingExponent && f.N < 1 {
		return ErrInvalidDegree
	}
	return nil
}

// Window returns how many previous iterates the recurrence reads.
func (f Fractal) Window() int {
	switch f.Kind {
	case SecondDegreeWithGrowingExponent, SecondDegreeWithGrowingExponentParam,
		SecondDegreeAlternating, SecondDegreeThirtySevenBlend:
		return 2
	case ThirdDegreeWithGrowingExponent, ThirdDegreePairs:
		return 3
	case NthDegreeWithGrowingExponent:
		return f.N
	default:
		return 1
	}
}

// next computes the new last element from the window (oldest first).
func (f Fractal) next(w []Complex4, c Complex4, i uint32) Complex4 {
	switch f.Kind {
	case MandelbrotCustomExp:
		return w[0].PowF(f.Exp).Add(c)
	case SecondDegreeWithGrowingExponent:
		return w[1].Mul(w[1]).Add(w[0]).Add(c)
	case SecondDegreeWithGrowingExponentParam:
		return w[1].Mul(w[1]).Add(Splat4(f.ARe, f.AIm).Mul(w[0])).Add(c)
	case SecondDegreeAlternating:
		return w[1].Mul(w[1]).Sub(w[0]).Add(c)
	case ThirdDegreeWithGrowingExponent:
		return w[2].PowI(3).Add(w[1].Mul(w[1])).Add(w[0]).Add(c)
	case NthDegreeWithGrowingExponent:
		n := len(w)
		acc := w[n-1].PowI(n)
		for k := n - 2; k >= 0; k-- {
			acc = acc.Add(w[k].PowI(k + 1))
		}
		return acc.Add(c)
	case ThirdDegreePairs:
		return w[0].Mul(w[1]).Add(w[0].Mul(w[2])).Add(w[1].Mul(w[2])).Add(c)
	case SecondDegreeThirtySevenBlend:
		if i%37 == 0 {
			return w[1].Mul(w[1]).Sub(w[0]).Add(c)
		}
		return w[1].Mul(w[1]).Add(w[0])
	default:
		return w[0].Mul(w[0]).Add(c)
	}
}

// shift drops the oldest iterate and appends z, for active lanes only.
func shift(w []Complex4, active Mask4, z Complex4) {
	n := len(w)
	for k := 0; k < n-1; k++ {
		w[k] = Select4(active, w[k+1], w[k])
	}
	w[n-1] = Select4(active, z, w[n-1])
}

func newWindow(buf *[maxWindowOnStack]Complex4, n int) []Complex4 {
	if n <= maxWindowOnStack {
		w := buf[:n]
		clear(w)
		return w
	}
	return make([]Complex4, n)
}

// GetPixel returns per lane the number of steps taken before the orbit of c
// left the bailout disk, capped at maxIter.
func (f Fractal) GetPixel(c Complex4, maxIter uint32) [Lanes]uint32 {
	var out [Lanes]uint32
	n := f.Window()
	if n < 1 {
		return out
	}
	var buf [maxWindowOnStack]Complex4
	w := newWindow(&buf, n)
	bail := SplatF64(Bailout)
	active := AllMask()
	var counts F64x4
	for i := uint32(0); i < maxIter; i++ {
		active = active.And(w[n-1].NormSqr().Le(bail))
		if !active.Any() {
			break
		}
		shift(w, active, f.next(w, c, i))
		counts = counts.Add(active.Ones())
	}
	for l := range out {
		out[l] = uint32(counts[l])
	}
	return out
}

// Sample returns the orbit of every lane of c.
func (f Fractal) Sample(c Complex4, maxIter uint32) Orbits {
	var o Orbits
	f.SampleInto(c, maxIter, &o)
	return o
}

// SampleInto is Sample reusing the slices of o.
func (f Fractal) SampleInto(c Complex4, maxIter uint32, o *Orbits) {
	for l := range o {
		o[l] = o[l][:0]
	}
	n := f.Window()
	if n < 1 {
		return
	}
	var buf [maxWindowOnStack]Complex4
	w := newWindow(&buf, n)
	bail := SplatF64(Bailout)
	active := AllMask()
	for i := uint32(0); i < maxIter; i++ {
		active = active.And(w[n-1].NormSqr().Le(bail))
		if !active.Any() {
			break
		}
		z := f.next(w, c, i)
		shift(w, active, z)
		rec := active.And(z.NormSqr().Le(bail))
		for l := 0; l < Lanes; l++ {
			if rec[l] {
				o[l] = append(o[l], z.Lane(l))
			}
		}
	}
}
