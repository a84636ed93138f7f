package optics

import (
	"fmt"
	"math"
)

// Undefined is the sentinel reachability value meaning "no finite value is
// known yet". It is the largest finite float64, so it naturally compares
// greater than any real distance the engine computes, and a SeedQueue
// ordered by plain numeric comparison sorts UNDEFINED entries last without
// special-casing them. The core never performs arithmetic on it.
const Undefined float64 = math.MaxFloat64

// PointStore owns the coordinates and mutable per-point state (reachability,
// processed flag) for one OPTICS run. Other components never copy
// coordinates or extend a point's lifetime past the store's; they refer to
// points only by their stable index ("handle").
type PointStore struct {
	data         []float64 // flat row-major, n*dims
	n            int
	dims         int
	reachability []float64
	processed    []bool
	labels       []any // optional, see NewLabeledPointStore
}

// NewPointStore builds a PointStore from a set of equal-dimensionality
// points. It returns ErrDimensionMismatch if any point's length differs from
// the first point's.
func NewPointStore(points [][]float64) (*PointStore, error) {
	n := len(points)
	if n == 0 {
		return &PointStore{}, nil
	}
	dims := len(points[0])
	data := make([]float64, n*dims)
	for i, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrDimensionMismatch, i, len(p), dims)
		}
		copy(data[i*dims:(i+1)*dims], p)
	}
	ps := &PointStore{
		data:         data,
		n:            n,
		dims:         dims,
		reachability: make([]float64, n),
		processed:    make([]bool, n),
	}
	ps.reset()
	return ps, nil
}

// Len returns the number of points owned by the store.
func (ps *PointStore) Len() int { return ps.n }

// Dims returns the shared dimensionality of every point in the store.
func (ps *PointStore) Dims() int { return ps.dims }

// reset sets every point's reachability to Undefined and processed to
// false. Called once at the start of a run.
func (ps *PointStore) reset() {
	for i := range ps.reachability {
		ps.reachability[i] = Undefined
	}
	for i := range ps.processed {
		ps.processed[i] = false
	}
}

// Get returns the coordinates of point i. The returned slice aliases the
// store's internal storage and must not be mutated by the caller.
func (ps *PointStore) Get(i int) []float64 {
	return ps.data[i*ps.dims : (i+1)*ps.dims]
}

// Reachability returns the current reachability distance of point i. It is
// Undefined until update_seeds first assigns it a finite tentative value.
func (ps *PointStore) Reachability(i int) float64 {
	return ps.reachability[i]
}

// SetReachability assigns point i's reachability distance. v must be
// non-negative; a negative value is a LogicError and panics, since no
// legitimate squared distance or Undefined sentinel is ever negative.
func (ps *PointStore) SetReachability(i int, v float64) {
	if v < 0 {
		panic(fmt.Sprintf("optics: LogicError: reachability must be >= 0, got %v", v))
	}
	ps.reachability[i] = v
}

// Processed reports whether point i has already been emitted into the
// ordering.
func (ps *PointStore) Processed(i int) bool {
	return ps.processed[i]
}

// MarkProcessed marks point i as emitted. Idempotent.
func (ps *PointStore) MarkProcessed(i int) {
	ps.processed[i] = true
}
