package optics

import "fmt"

// ExtractClusters partitions ordering into clusters using borders, an
// ascending-sorted list of indices into the ordering, per spec.md §4.8.
//
// borders defines m+1 contiguous segments [0, b1), [b1, b2), ..., [bm, n)
// (a border belongs to the segment starting at it). The returned slice
// always has len(borders)+2 buckets: bucket 0 is the outlier bucket,
// buckets 1..m+1 are the segments in order. Buckets are returned even when
// empty.
//
// A point is diverted to the outlier bucket when its reachability exceeds
// outlierThreshold. outlierThreshold <= 0 means "no outliers" — every point
// stays in its segment's bucket regardless of reachability.
//
// ExtractClusters returns an error wrapping ErrDimensionMismatch if borders
// is not strictly ascending or any border falls outside [0, ordering.Len()].
func ExtractClusters(ordering *Ordering, borders []int, outlierThreshold float64) ([][]int, error) {
	n := ordering.Len()
	for i, b := range borders {
		if b < 0 || b > n {
			return nil, fmt.Errorf("%w: border index %d out of range [0, %d]", ErrDimensionMismatch, b, n)
		}
		if i > 0 && borders[i-1] >= b {
			return nil, fmt.Errorf("%w: border indices must be strictly ascending, got %d then %d", ErrDimensionMismatch, borders[i-1], b)
		}
	}

	noOutliers := outlierThreshold <= 0

	buckets := make([][]int, len(borders)+2)
	for i := range buckets {
		buckets[i] = []int{}
	}

	segment := 0
	nextBorder := func() int {
		if segment < len(borders) {
			return borders[segment]
		}
		return n
	}

	for i := 0; i < n; i++ {
		for i >= nextBorder() {
			segment++
		}

		point := ordering.Points[i]
		if !noOutliers && ordering.Reachability[i] > outlierThreshold {
			buckets[0] = append(buckets[0], point)
			continue
		}
		buckets[segment+1] = append(buckets[segment+1], point)
	}

	return buckets, nil
}
