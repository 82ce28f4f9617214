package orbits

import (
	"math"
	"testing"
)

func near(a, b Point2, eps Real) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestViewCorners(t *testing.T) {
	v := NewView(200, 100, 4, Point2{-0.5, 0.25}, 0)
	if got := v.PixelToPlane(Point2{0, 0}); !near(got, Point2{-2.5, -0.75}, 1e-12) {
		t.Fatalf("top-left maps to %+v", got)
	}
	if got := v.PixelToPlane(Point2{200, 100}); !near(got, Point2{1.5, 1.25}, 1e-12) {
		t.Fatalf("bottom-right maps to %+v", got)
	}
	if got := v.PixelToPlane(Point2{100, 50}); !near(got, v.Center, 1e-12) {
		t.Fatalf("image center maps to %+v", got)
	}
}

func TestViewInverse(t *testing.T) {
	for _, rot := range []Real{0, 30, -90, 217.5} {
		v := NewView(64, 48, 3, Point2{0.3, -0.1}, rot)
		for _, p := range []Point2{{0.5, 0.5}, {63.5, 0.5}, {10.25, 40.75}, {32, 24}} {
			back := v.PlaneToPixel(v.PixelToPlane(p))
			if !near(back, p, 1e-9) {
				t.Fatalf("rot %v: %+v -> %+v", rot, p, back)
			}
		}
		if got := v.PixelToPlane(Point2{32, 24}); !near(got, v.Center, 1e-12) {
			t.Fatalf("rot %v: center moved to %+v", rot, got)
		}
	}
}

func TestViewRotationTurnsAboutCenter(t *testing.T) {
	v := NewView(100, 100, 2, Point2{0, 0}, 90)
	// pixel to the right of the center lands above it after a quarter turn
	got := v.PixelToPlane(Point2{100, 50})
	if !near(got, Point2{0, 1}, 1e-12) {
		t.Fatalf("got %+v", got)
	}
}

func TestViewCell(t *testing.T) {
	v := NewView(10, 5, 1, Point2{}, 0)
	cases := []struct {
		p  Point2
		i  int
		j  int
		ok bool
	}{
		{Point2{0, 0}, 0, 0, true},
		{Point2{9.999, 4.5}, 9, 4, true},
		{Point2{10, 1}, 0, 0, false},
		{Point2{-0.001, 1}, 0, 0, false},
		{Point2{math.NaN(), 1}, 0, 0, false},
	}
	for _, tc := range cases {
		i, j, ok := v.Cell(tc.p)
		if ok != tc.ok || (ok && (i != tc.i || j != tc.j)) {
			t.Fatalf("%+v: got (%d,%d,%v)", tc.p, i, j, ok)
		}
	}
}

func TestViewZeroSize(t *testing.T) {
	v := NewView(0, 10, 4, Point2{}, 0)
	p := Point2{1, 2}
	if v.PixelToPlane(p) != p || v.PlaneToPixel(p) != p {
		t.Fatal("zero sized view should use identity transforms")
	}
}

func TestViewValid(t *testing.T) {
	cases := []struct {
		w, h   int
		zoom   Real
		center Point2
		rot    Real
		valid  bool
	}{
		{64, 64, 4, Point2{}, 0, true},
		{64, 32, 0.001, Point2{-1, 0.3}, 30, true},
		{0, 10, 4, Point2{}, 0, true},
		{64, 64, 0, Point2{}, 0, false},
		{64, 64, -2, Point2{}, 0, false},
		{64, 64, math.Inf(1), Point2{}, 0, false},
		{64, 64, math.NaN(), Point2{}, 0, false},
		{64, 64, 4, Point2{math.NaN(), 0}, 0, false},
		{64, 64, 4, Point2{}, math.Inf(-1), false},
		{0, 0, 0, Point2{}, 0, false},
	}
	for _, tc := range cases {
		v := NewView(tc.w, tc.h, tc.zoom, tc.center, tc.rot)
		if v.Valid() != tc.valid {
			t.Fatalf("%dx%d zoom=%g center=%v rot=%g: valid=%v, expected %v", tc.w, tc.h, tc.zoom, tc.center, tc.rot, v.Valid(), tc.valid)
		}
	}
}
