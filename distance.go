package optics

import "fmt"

// SquaredDistance computes the squared Euclidean distance between two
// points of equal dimensionality: d²(a,b) = Σ (aᵢ − bᵢ)². The engine works
// exclusively with squared distances (never taking a square root) since
// squaring preserves every ordering OPTICS relies on and skips the sqrt on
// the hot path. a and b must have equal length; a mismatch is a programmer
// error and panics rather than returning a zero value that would silently
// corrupt the ordering.
func SquaredDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("optics: LogicError: dimension mismatch in SquaredDistance (%d vs %d)", len(a), len(b)))
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
