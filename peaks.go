package optics

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// PersistencePair is one birth-death event from the 1-D persistence
// filtration of a reachability signal: the local minimum at MinIndex died
// (was absorbed) when two basins merged at the local maximum / saddle at
// MaxIndex, with the given persistence (height difference).
type PersistencePair struct {
	MinIndex    int
	MaxIndex    int
	Persistence float64
}

// persistencePairs runs the standard 1-D topological persistence algorithm
// over signal, the pairing of local minima with local maxima by matching
// birth-death events on a sub-level-set filtration (spec.md §4.7).
//
// Points are swept in ascending value order; a union-find over the domain
// tracks contiguous already-swept runs ("basins"). A point whose neighbors
// are both already swept is where two basins merge — a saddle, which is
// necessarily a local maximum of the signal. The basin with the shallower
// (higher-valued) minimum dies there; its persistence is the saddle's value
// minus its minimum's value. The basin containing the signal's global
// minimum never dies and is not reported — its persistence is unbounded.
//
// gonum's floats package (the one dependency the teacher repository already
// carried but never exercised) supplies the degenerate-case check: a flat
// signal (floats.Max == floats.Min) has no saddle at all and therefore no
// finite-persistence pairs.
func persistencePairs(signal []float64) []PersistencePair {
	n := len(signal)
	if n < 2 || floats.Max(signal) == floats.Min(signal) {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return signal[order[i]] < signal[order[j]]
	})

	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	find := func(x int) int {
		root := x
		for parent[root] != -1 {
			root = parent[root]
		}
		for parent[x] != -1 {
			x, parent[x] = parent[x], root
		}
		return root
	}
	union := func(a, b int) int {
		ra, rb := find(a), find(b)
		if ra == rb {
			return ra
		}
		parent[rb] = ra
		return ra
	}

	compMin := make([]int, n)
	processed := make([]bool, n)
	var pairs []PersistencePair

	for _, idx := range order {
		leftDone := idx > 0 && processed[idx-1]
		rightDone := idx < n-1 && processed[idx+1]

		switch {
		case !leftDone && !rightDone:
			compMin[idx] = idx

		case leftDone && !rightDone:
			leftRoot := find(idx - 1)
			newRoot := union(leftRoot, idx)
			compMin[newRoot] = compMin[leftRoot]

		case !leftDone && rightDone:
			rightRoot := find(idx + 1)
			newRoot := union(rightRoot, idx)
			compMin[newRoot] = compMin[rightRoot]

		default:
			leftRoot := find(idx - 1)
			rightRoot := find(idx + 1)
			if leftRoot == rightRoot {
				newRoot := union(leftRoot, idx)
				compMin[newRoot] = compMin[leftRoot]
				break
			}

			leftMin, rightMin := compMin[leftRoot], compMin[rightRoot]
			dyingMin, survivingRoot := leftMin, rightRoot
			if signal[leftMin] < signal[rightMin] {
				dyingMin, survivingRoot = rightMin, leftRoot
			}

			pairs = append(pairs, PersistencePair{
				MinIndex:    dyingMin,
				MaxIndex:    idx,
				Persistence: signal[idx] - signal[dyingMin],
			})

			newRoot := union(leftRoot, idx)
			newRoot = union(newRoot, rightRoot)
			compMin[newRoot] = compMin[survivingRoot]
		}

		processed[idx] = true
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Persistence != pairs[j].Persistence {
			return pairs[i].Persistence < pairs[j].Persistence
		}
		return pairs[i].MaxIndex < pairs[j].MaxIndex
	})

	return pairs
}

// FindPeaksTopK returns up to k-1 indices of the most persistent maxima in
// signal, ordered by decreasing persistence (most persistent first). If
// fewer than k-1 paired extrema exist, it returns all of them. k must be
// >= 1.
func FindPeaksTopK(signal []float64, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", ErrInvalidParameter, k)
	}

	pairs := persistencePairs(signal)
	want := k - 1
	if want > len(pairs) {
		want = len(pairs)
	}

	result := make([]int, want)
	for i := 0; i < want; i++ {
		result[i] = pairs[len(pairs)-1-i].MaxIndex
	}
	return result, nil
}

// FindPeaksThreshold returns every maximum-index from paired extrema whose
// persistence is >= tau, in the order the persistence routine pairs them
// (ascending persistence). tau must be >= 0.
func FindPeaksThreshold(signal []float64, tau float64) ([]int, error) {
	if tau < 0 {
		return nil, fmt.Errorf("%w: persistence threshold must be >= 0, got %v", ErrInvalidParameter, tau)
	}

	pairs := persistencePairs(signal)
	var result []int
	for _, p := range pairs {
		if p.Persistence >= tau {
			result = append(result, p.MaxIndex)
		}
	}
	return result, nil
}
