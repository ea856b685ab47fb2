package numeric

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Resample linearly interpolates the sampled function (xs, ys) onto the
// target grid. xs must be sorted ascending. Grid points outside the sampled
// range evaluate to zero.
func Resample(xs, ys, grid []float64) ([]float64, error) {
	if len(xs) == 0 || len(grid) == 0 {
		return nil, ErrEmptyInput
	}

	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, len(grid))

	for i, x := range grid {
		if x < xs[0] || x > xs[len(xs)-1] {
			continue
		}

		// First index with xs[j] >= x.
		j := sort.SearchFloat64s(xs, x)
		if j < len(xs) && xs[j] == x {
			out[i] = ys[j]
			continue
		}

		lo, hi := j-1, j
		span := xs[hi] - xs[lo]
		if span == 0 {
			out[i] = ys[lo]
			continue
		}

		frac := (x - xs[lo]) / span
		out[i] = ys[lo] + frac*(ys[hi]-ys[lo])
	}

	return out, nil
}

// Linspace returns count evenly spaced samples over [start, stop], inclusive.
func Linspace(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}

	out := make([]float64, count)
	if count == 1 {
		out[0] = start
		return out
	}

	return floats.Span(out, start, stop)
}
