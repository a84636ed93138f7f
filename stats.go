package optics

import "gonum.org/v1/gonum/stat"

// OrderingStats summarizes the finite reachability values of an Ordering —
// useful for a caller choosing an outlier_threshold or a persistence
// threshold without inspecting the raw sequence.
type OrderingStats struct {
	// Count is the number of points with a finite (non-Undefined)
	// reachability.
	Count    int
	Mean     float64
	Variance float64
	Min      float64
	Max      float64
}

// Stats summarizes o's reachability sequence, ignoring Undefined entries
// (every ordering has at least one, its first point). Returns the zero
// value if no point has a finite reachability.
func (o *Ordering) Stats() OrderingStats {
	finite := make([]float64, 0, len(o.Reachability))
	for _, r := range o.Reachability {
		if r != Undefined {
			finite = append(finite, r)
		}
	}
	if len(finite) == 0 {
		return OrderingStats{}
	}

	mean, variance := stat.MeanVariance(finite, nil)

	min, max := finite[0], finite[0]
	for _, v := range finite[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return OrderingStats{
		Count:    len(finite),
		Mean:     mean,
		Variance: variance,
		Min:      min,
		Max:      max,
	}
}
