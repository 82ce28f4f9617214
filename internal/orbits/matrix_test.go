package orbits

import (
	"math"
	"testing"
)

func TestI3Apply(t *testing.T) {
	p := Point2{1.5, -2}
	if out := I3().Apply(p); out != p {
		t.Fatalf("I*p != p: %+v", out)
	}
}

func TestMat3InverseRoundTrip(t *testing.T) {
	M := translate(3, -1).Mul(rot2(0.7)).Mul(scale(2, 0.5))
	inv, ok := M.Inverse()
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	P := M.Mul(inv)
	I := I3()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(P.M[r][c]-I.M[r][c]) > 1e-12 {
				t.Fatalf("M*M^-1 [%d][%d] = %v", r, c, P.M[r][c])
			}
		}
	}
	if _, ok := scale(0, 1).Inverse(); ok {
		t.Fatal("singular matrix reported invertible")
	}
}

func TestRotAboutKeepsPivot(t *testing.T) {
	pivot := Point2{2, 3}
	R := rotAbout(math.Pi/2, pivot)
	if out := R.Apply(pivot); math.Abs(out.X-2) > 1e-12 || math.Abs(out.Y-3) > 1e-12 {
		t.Fatalf("pivot moved to %+v", out)
	}
	out := R.Apply(Point2{3, 3})
	if math.Abs(out.X-2) > 1e-12 || math.Abs(out.Y-4) > 1e-12 {
		t.Fatalf("quarter turn gave %+v", out)
	}
}
