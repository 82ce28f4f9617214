package orbits

// Point2 is a point in the pixel or the complex plane.
type Point2 struct {
	X, Y Real
}

func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }
func (p Point2) Scale(s Real) Point2 { return Point2{p.X * s, p.Y * s} }
func (p Point2) Complex() complex128 { return complex(p.X, p.Y) }
