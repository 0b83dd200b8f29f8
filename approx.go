package gosieray

import "math"

// Epsilon is the absolute tolerance used for every float comparison.
const Epsilon = 0.00001

// ApproxEq reports whether a and b differ by strictly less than Epsilon.
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// approxEqAll compares two same-shaped field lists pairwise.
func approxEqAll(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ApproxEq(a[i], b[i]) {
			return false
		}
	}
	return true
}
