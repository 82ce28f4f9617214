package orbits

import (
	"encoding"
	"fmt"
	"math"
	"runtime"
	"strings"
)

type encodingText interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// isNormal reports whether x is a finite, non-zero, non-subnormal float.
func isNormal(x Real) bool {
	return isFinite(x) && math.Abs(x) >= 0x1p-1022
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func workers() int {
	if Workers > 0 {
		return Workers
	}
	return imax(1, runtime.NumCPU())
}

// enumName returns names[k] or a numbered placeholder for out of range kinds.
func enumName[T ~int](names []string, k T) string {
	if int(k) < 0 || int(k) >= len(names) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return names[k]
}

// parseEnum finds s in names, ignoring case.
func parseEnum[T ~int](names []string, s string, notFound error) (T, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", notFound, s)
}
