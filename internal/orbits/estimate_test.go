package orbits

import "testing"

func TestEstimateOrbitLength(t *testing.T) {
	f := Fractal{Kind: Mandelbrot}
	v := NewView(32, 32, 4, Point2{}, 0)
	mean := estimateOrbitLength(f, v, 20, 2000)
	if mean <= 0 || mean > 20 {
		t.Fatalf("unexpected mean orbit length %v", mean)
	}
	// every point of this view escapes on the first step
	far := NewView(32, 32, 1, Point2{10, 10}, 0)
	if m := estimateOrbitLength(f, far, 20, 100); m != 0 {
		t.Fatalf("far view mean %v", m)
	}
	if m := estimateOrbitLength(f, v, 20, 0); m != 0 {
		t.Fatalf("zero trials mean %v", m)
	}
	if m := estimateOrbitLength(f, v, 20, 3); m < 0 || m > 20 {
		t.Fatalf("few trials mean %v", m)
	}
}
