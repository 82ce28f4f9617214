package orbits

import "math"

func rot2(a Real) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	M := I3()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}

// Rotation by a radians about p.
func rotAbout(a Real, p Point2) Mat3 {
	R := translate(-p.X, -p.Y)
	R = rot2(a).Mul(R)
	R = translate(p.X, p.Y).Mul(R)
	return R
}

func degToRad(d Real) Real { return d * math.Pi / 180 }
