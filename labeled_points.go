package optics

import "fmt"

// NewLabeledPointStore builds a PointStore exactly as NewPointStore does,
// additionally attaching an arbitrary application-level label to each
// point. labels must have the same length as points.
//
// This mirrors DataPoint.hpp's LabelledDataPoint from the original
// implementation this engine was distilled from: a purely additive
// supplement for callers who want to correlate ordering output back to
// their own point identities (e.g. database row IDs). The OPTICS algorithm
// itself never reads labels; they ride along unused by Run, Neighbors, or
// CoreDistance.
func NewLabeledPointStore(points [][]float64, labels []any) (*PointStore, error) {
	if len(labels) != len(points) {
		return nil, fmt.Errorf("%w: %d labels for %d points", ErrDimensionMismatch, len(labels), len(points))
	}

	ps, err := NewPointStore(points)
	if err != nil {
		return nil, err
	}

	ps.labels = make([]any, len(labels))
	copy(ps.labels, labels)
	return ps, nil
}

// Label returns the label attached to point i, or nil if the store was
// built with NewPointStore rather than NewLabeledPointStore.
func (ps *PointStore) Label(i int) any {
	if ps.labels == nil {
		return nil
	}
	return ps.labels[i]
}
