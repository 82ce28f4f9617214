package orbits

import "gonum.org/v1/gonum/floats"

// histogramIndex maps a value of [0,1] to one of size buckets. Values
// outside the range are clamped.
func histogramIndex(v Real, size int) int {
	x := v * Real(size-1)
	if !(x > 0) {
		return 0
	}
	if x >= Real(size-1) {
		return size - 1
	}
	return int(x)
}

// ComputeHistogram counts normalized values into size buckets.
func ComputeHistogram(values []Real, size int) []Real {
	h := make([]Real, size)
	if size == 0 {
		return h
	}
	for _, v := range values {
		h[histogramIndex(v, size)]++
	}
	return h
}

// CumulateHistogram returns the prefix sums of h divided by its total. The
// last element is 1 unless h is empty or all zero.
func CumulateHistogram(h []Real) []Real {
	cum := make([]Real, len(h))
	total := floats.Sum(h)
	if total == 0 {
		return cum
	}
	floats.CumSum(cum, h)
	floats.Scale(1/total, cum)
	return cum
}

// HistogramValue returns the cumulative rank of a normalized value.
func HistogramValue(cum []Real, v Real) Real {
	if len(cum) == 0 {
		return 0
	}
	return cum[histogramIndex(v, len(cum))]
}
