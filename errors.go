package optics

import "errors"

// ErrInvalidParameter is wrapped by errors describing a caller-supplied
// parameter that the algorithm cannot proceed with (min_pts == 0, k < 1 in
// top-k mode, a negative persistence threshold in threshold mode).
var ErrInvalidParameter = errors.New("optics: invalid parameter")

// ErrDimensionMismatch is wrapped by errors describing data whose
// dimensionality is inconsistent, or a border index outside the ordering.
var ErrDimensionMismatch = errors.New("optics: dimension mismatch")
