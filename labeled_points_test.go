package optics

import (
	"errors"
	"testing"
)

func TestNewLabeledPointStore(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}}
	labels := []any{"row-1", "row-2"}

	ps, err := NewLabeledPointStore(points, labels)
	if err != nil {
		t.Fatalf("NewLabeledPointStore returned error: %v", err)
	}
	if ps.Label(0) != "row-1" {
		t.Errorf("Label(0) = %v, want row-1", ps.Label(0))
	}
	if ps.Label(1) != "row-2" {
		t.Errorf("Label(1) = %v, want row-2", ps.Label(1))
	}
}

func TestNewLabeledPointStore_LengthMismatch(t *testing.T) {
	_, err := NewLabeledPointStore([][]float64{{0, 0}, {1, 1}}, []any{"only-one"})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want wrapping ErrDimensionMismatch", err)
	}
}

func TestPointStore_LabelNilWithoutLabels(t *testing.T) {
	ps, err := NewPointStore([][]float64{{0, 0}})
	if err != nil {
		t.Fatalf("NewPointStore returned error: %v", err)
	}
	if ps.Label(0) != nil {
		t.Errorf("Label(0) = %v, want nil", ps.Label(0))
	}
}
