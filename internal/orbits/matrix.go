package orbits

// 3×3 homogeneous 2D transform (row-major)
type Mat3 struct {
	M [3][3]Real
}

func I3() Mat3 {
	return Mat3{M: [3][3]Real{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

func (A Mat3) Mul(B Mat3) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

// Apply transforms p, assuming the last row is (0, 0, 1).
func (A Mat3) Apply(p Point2) Point2 {
	return Point2{
		A.M[0][0]*p.X + A.M[0][1]*p.Y + A.M[0][2],
		A.M[1][0]*p.X + A.M[1][1]*p.Y + A.M[1][2],
	}
}

// Inverse of an affine transform. ok is false when the linear part is singular.
func (A Mat3) Inverse() (Mat3, bool) {
	a, b, c, d := A.M[0][0], A.M[0][1], A.M[1][0], A.M[1][1]
	det := a*d - b*c
	if det == 0 || !isFinite(det) {
		return I3(), false
	}
	inv := 1 / det
	ia, ib, ic, id := d*inv, -b*inv, -c*inv, a*inv
	tx, ty := A.M[0][2], A.M[1][2]
	return Mat3{M: [3][3]Real{
		{ia, ib, -(ia*tx + ib*ty)},
		{ic, id, -(ic*tx + id*ty)},
		{0, 0, 1},
	}}, true
}

func translate(dx, dy Real) Mat3 {
	M := I3()
	M.M[0][2], M.M[1][2] = dx, dy
	return M
}

func scale(sx, sy Real) Mat3 {
	M := I3()
	M.M[0][0], M.M[1][1] = sx, sy
	return M
}
