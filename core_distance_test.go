package optics

import "testing"

func TestCoreDistance(t *testing.T) {
	// Points at 0, 1, 2, 3, 10 on a line. Squared distances from point 0 to
	// every point including itself: 0, 1, 4, 9, 100.
	ps, err := NewPointStore([][]float64{{0}, {1}, {2}, {3}, {10}})
	if err != nil {
		t.Fatalf("NewPointStore returned error: %v", err)
	}
	neighbors := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		minPts int
		want   float64
	}{
		{name: "minPts=1 selects index 1 (squared distance 1)", minPts: 1, want: 1},
		{name: "minPts=2 selects index 2 (squared distance 4)", minPts: 2, want: 4},
		{name: "minPts=4 selects index 4 (squared distance 100)", minPts: 4, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoreDistance(ps, 0, tt.minPts, neighbors)
			if got != tt.want {
				t.Errorf("CoreDistance(minPts=%d) = %v, want %v", tt.minPts, got, tt.want)
			}
		})
	}
}

func TestCoreDistance_UndefinedWhenNeighborhoodTooSmall(t *testing.T) {
	ps, err := NewPointStore([][]float64{{0}, {1}})
	if err != nil {
		t.Fatalf("NewPointStore returned error: %v", err)
	}
	got := CoreDistance(ps, 0, 5, []int{0, 1})
	if got != Undefined {
		t.Errorf("CoreDistance = %v, want Undefined", got)
	}
}

func TestNthSmallest(t *testing.T) {
	tests := []struct {
		name  string
		dists []float64
		n     int
		want  float64
	}{
		{name: "already sorted", dists: []float64{1, 2, 3, 4}, n: 2, want: 3},
		{name: "reverse sorted", dists: []float64{4, 3, 2, 1}, n: 0, want: 1},
		{name: "duplicates", dists: []float64{2, 2, 2, 2}, n: 3, want: 2},
		{name: "single element", dists: []float64{7}, n: 0, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dists := append([]float64(nil), tt.dists...)
			got := nthSmallest(dists, tt.n)
			if got != tt.want {
				t.Errorf("nthSmallest(%v, %d) = %v, want %v", tt.dists, tt.n, got, tt.want)
			}
		})
	}
}
