package optics

import (
	"errors"
	"testing"
)

func TestComputePairwiseSquaredDistances(t *testing.T) {
	data := []float64{0, 0, 3, 4, 6, 8} // 3 points, dims=2
	got := ComputePairwiseSquaredDistances(data, 3, 2)

	want := []float64{
		0, 25, 100,
		25, 0, 25,
		100, 25, 0,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("matrix[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestComputePairwiseSquaredDistancesParallel_MatchesSequential(t *testing.T) {
	data := []float64{0, 0, 1, 0, 2, 0, 10, 10, 11, 11}
	n, dims := 5, 2

	sequential := ComputePairwiseSquaredDistances(data, n, dims)
	parallel := ComputePairwiseSquaredDistancesParallel(data, n, dims, 3)

	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Errorf("matrix[%d]: sequential=%v parallel=%v", i, sequential[i], parallel[i])
		}
	}
}

func TestComputePairwiseSquaredDistancesParallel_FallsBackWhenNumWorkersLow(t *testing.T) {
	data := []float64{0, 0, 1, 1}
	sequential := ComputePairwiseSquaredDistances(data, 2, 2)
	got := ComputePairwiseSquaredDistancesParallel(data, 2, 2, 1)
	for i := range sequential {
		if sequential[i] != got[i] {
			t.Errorf("matrix[%d] = %v, want %v", i, got[i], sequential[i])
		}
	}
}

func TestDistanceCache_Neighbors(t *testing.T) {
	ps, err := NewPointStore([][]float64{{0, 0}, {1, 0}, {5, 0}})
	if err != nil {
		t.Fatalf("NewPointStore returned error: %v", err)
	}
	dc := NewDistanceCache(ps, 2)

	got := dc.Neighbors(0, 1)
	want := []int{0, 1}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(0, 1) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(0, 1)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRunWithCache_MatchesRunStore(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}, {10, 10}, {11, 11}}
	cfg := Config{Eps: 3.0, MinPts: 2}

	ps, err := NewPointStore(points)
	if err != nil {
		t.Fatalf("NewPointStore returned error: %v", err)
	}
	want, err := RunStore(ps, cfg)
	if err != nil {
		t.Fatalf("RunStore returned error: %v", err)
	}

	ps2, err := NewPointStore(points)
	if err != nil {
		t.Fatalf("NewPointStore returned error: %v", err)
	}
	dc := NewDistanceCache(ps2, 2)
	got, err := RunWithCache(ps2, dc, cfg)
	if err != nil {
		t.Fatalf("RunWithCache returned error: %v", err)
	}

	if len(got.Points) != len(want.Points) {
		t.Fatalf("RunWithCache produced %d points, want %d", len(got.Points), len(want.Points))
	}
	for i := range want.Points {
		if got.Points[i] != want.Points[i] {
			t.Errorf("Points[%d] = %d, want %d", i, got.Points[i], want.Points[i])
		}
		if got.Reachability[i] != want.Reachability[i] {
			t.Errorf("Reachability[%d] = %v, want %v", i, got.Reachability[i], want.Reachability[i])
		}
	}
}

func TestRunWithCache_RejectsNegativeEps(t *testing.T) {
	ps, err := NewPointStore([][]float64{{0, 0}, {1, 0}})
	if err != nil {
		t.Fatalf("NewPointStore returned error: %v", err)
	}
	dc := NewDistanceCache(ps, 1)

	_, err = RunWithCache(ps, dc, Config{Eps: -1, MinPts: 1})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("err = %v, want wrapping ErrInvalidParameter", err)
	}
}
