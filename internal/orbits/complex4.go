package orbits

// Complex4 holds Lanes complex numbers in structure-of-arrays form and
// operates on all of them at once.
type Complex4 struct {
	Re, Im F64x4
}

// Splat4 broadcasts one complex value to every lane.
func Splat4(re, im float64) Complex4 {
	return Complex4{Re: SplatF64(re), Im: SplatF64(im)}
}

func Zero4() Complex4 { return Complex4{} }

// FromLanes packs scalar complex values into lanes.
func FromLanes(zs [Lanes]complex128) Complex4 {
	var z Complex4
	for i, v := range zs {
		z.Re[i], z.Im[i] = real(v), imag(v)
	}
	return z
}

// Lane returns lane i as a scalar complex number.
func (z Complex4) Lane(i int) complex128 { return complex(z.Re[i], z.Im[i]) }

func (z Complex4) Add(o Complex4) Complex4 { return Complex4{z.Re.Add(o.Re), z.Im.Add(o.Im)} }
func (z Complex4) Sub(o Complex4) Complex4 { return Complex4{z.Re.Sub(o.Re), z.Im.Sub(o.Im)} }
func (z Complex4) Neg() Complex4           { return Complex4{z.Re.Neg(), z.Im.Neg()} }

// Mul uses the three-multiplication form of the complex product.
func (z Complex4) Mul(o Complex4) Complex4 {
	k1 := o.Re.Mul(z.Re.Add(z.Im))
	k2 := z.Re.Mul(o.Im.Sub(o.Re))
	k3 := z.Im.Mul(o.Re.Add(o.Im))
	return Complex4{Re: k1.Sub(k3), Im: k1.Add(k2)}
}

func (z Complex4) MulScalar(s float64) Complex4 { return Complex4{z.Re.Scale(s), z.Im.Scale(s)} }

// NormSqr returns re²+im² per lane.
func (z Complex4) NormSqr() F64x4 { return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im)) }

func (z Complex4) Norm() F64x4 { return z.NormSqr().Sqrt() }

// Arg returns atan2(im, re) per lane.
func (z Complex4) Arg() F64x4 { return z.Im.Atan2(z.Re) }

func (z Complex4) ToPolar() (r, theta F64x4) { return z.Norm(), z.Arg() }

func FromPolar(r, theta F64x4) Complex4 {
	return Complex4{Re: r.Mul(theta.Cos()), Im: r.Mul(theta.Sin())}
}

// PowU squares the accumulator n-1 times starting from z, giving z^(2^(n-1)).
// n must be >= 1; n == 0 returns z unchanged.
func (z Complex4) PowU(n int) Complex4 {
	acc := z
	for i := 1; i < n; i++ {
		acc = acc.Mul(acc)
	}
	return acc
}

// PowI returns z^k by k-1 multiplications by z. k == 0 gives 1.
func (z Complex4) PowI(k int) Complex4 {
	if k <= 0 {
		return Splat4(1, 0)
	}
	acc := z
	for i := 1; i < k; i++ {
		acc = acc.Mul(z)
	}
	return acc
}

// PowF raises z to a real exponent through polar form.
func (z Complex4) PowF(exp float64) Complex4 {
	r, theta := z.ToPolar()
	return FromPolar(r.PowF(exp), theta.Scale(exp))
}

// Select4 takes a where the mask is set and b elsewhere.
func Select4(m Mask4, a, b Complex4) Complex4 {
	return Complex4{Re: m.Select(a.Re, b.Re), Im: m.Select(a.Im, b.Im)}
}
