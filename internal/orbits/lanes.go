package orbits

import "math"

// F64x4 holds Lanes float64 values processed element-wise.
// Fixed-size arrays and plain loops let the compiler vectorize where it can.
type F64x4 [Lanes]float64

// Mask4 selects lanes. It is the only conditional primitive used on lane data.
type Mask4 [Lanes]bool

// SplatF64 returns an F64x4 with every lane set to x.
func SplatF64(x float64) F64x4 {
	var r F64x4
	for i := range r {
		r[i] = x
	}
	return r
}

// Add returns the lane-wise sum.
func (v F64x4) Add(o F64x4) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub returns v - o per lane.
func (v F64x4) Sub(o F64x4) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// Mul returns the lane-wise product.
func (v F64x4) Mul(o F64x4) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}

// Scale multiplies every lane by s.
func (v F64x4) Scale(s float64) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = v[i] * s
	}
	return r
}

// Neg flips the sign of every lane.
func (v F64x4) Neg() F64x4 {
	var r F64x4
	for i := range v {
		r[i] = -v[i]
	}
	return r
}

// Sqrt takes the square root per lane. Negative lanes give NaN.
func (v F64x4) Sqrt() F64x4 {
	var r F64x4
	for i := range v {
		r[i] = math.Sqrt(v[i])
	}
	return r
}

// Cos and Sin work in radians.
func (v F64x4) Cos() F64x4 {
	var r F64x4
	for i := range v {
		r[i] = math.Cos(v[i])
	}
	return r
}

func (v F64x4) Sin() F64x4 {
	var r F64x4
	for i := range v {
		r[i] = math.Sin(v[i])
	}
	return r
}

// Atan2 returns atan2(v[i], x[i]) per lane.
func (v F64x4) Atan2(x F64x4) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = math.Atan2(v[i], x[i])
	}
	return r
}

// PowF raises every lane to the scalar exponent e.
func (v F64x4) PowF(e float64) F64x4 {
	var r F64x4
	for i := range v {
		r[i] = math.Pow(v[i], e)
	}
	return r
}

// Le returns the mask of lanes where v[i] <= o[i].
func (v F64x4) Le(o F64x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] <= o[i]
	}
	return m
}

// Lt returns the mask of lanes where v[i] < o[i].
func (v F64x4) Lt(o F64x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] < o[i]
	}
	return m
}

// AllMask has every lane set.
func AllMask() Mask4 {
	var m Mask4
	for i := range m {
		m[i] = true
	}
	return m
}

// And sets the lanes set in both masks.
func (m Mask4) And(o Mask4) Mask4 {
	var r Mask4
	for i := range m {
		r[i] = m[i] && o[i]
	}
	return r
}

// Any reports whether at least one lane is set.
func (m Mask4) Any() bool {
	r := false
	for i := range m {
		r = r || m[i]
	}
	return r
}

// All reports whether every lane is set.
func (m Mask4) All() bool {
	r := true
	for i := range m {
		r = r && m[i]
	}
	return r
}

// Select takes a where the mask is set and b elsewhere.
func (m Mask4) Select(a, b F64x4) F64x4 {
	var r F64x4
	for i := range m {
		if m[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// Ones is 1 in set lanes and 0 elsewhere, for blending into accumulators.
func (m Mask4) Ones() F64x4 {
	return m.Select(SplatF64(1), F64x4{})
}
