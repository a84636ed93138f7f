package optics

// CoreDistance computes the squared core distance of point p, given its
// ε-neighborhood neighbors (as returned by Neighbors, including p itself)
// and the min_pts density threshold.
//
// If the neighborhood contains min_pts or fewer points (p is not a core
// object — note the strict inequality: the neighborhood always contains p
// itself, so "core object" requires min_pts *other* points), CoreDistance
// returns Undefined. Otherwise it returns the squared distance from p to
// its min_pts-th closest neighbor, 0-indexed from nearest (index 0 is p
// itself, at distance 0), found by partial (quickselect) selection rather
// than a full sort — ported from the original's use of std::nth_element.
func CoreDistance(ps *PointStore, p int, minPts int, neighbors []int) float64 {
	if len(neighbors) <= minPts {
		return Undefined
	}

	query := ps.Get(p)
	dists := make([]float64, len(neighbors))
	for i, idx := range neighbors {
		dists[i] = SquaredDistance(query, ps.Get(idx))
	}

	return nthSmallest(dists, minPts)
}

// nthSmallest returns the value that would occupy index n of dists if it
// were fully sorted ascending, using quickselect with Lomuto partitioning.
// dists is reordered in place; the caller's slice is a scratch buffer owned
// by CoreDistance, never aliased elsewhere.
func nthSmallest(dists []float64, n int) float64 {
	lo, hi := 0, len(dists)-1
	for lo < hi {
		pivot := partition(dists, lo, hi)
		switch {
		case n < pivot:
			hi = pivot - 1
		case n > pivot:
			lo = pivot + 1
		default:
			return dists[n]
		}
	}
	return dists[n]
}

// partition performs a Lomuto partition of dists[lo:hi+1] around
// dists[hi], returning the pivot's final index.
func partition(dists []float64, lo, hi int) int {
	pivot := dists[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if dists[j] < pivot {
			dists[i], dists[j] = dists[j], dists[i]
			i++
		}
	}
	dists[i], dists[hi] = dists[hi], dists[i]
	return i
}
