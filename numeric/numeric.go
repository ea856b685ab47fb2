package numeric

import (
	"math"
	"sort"
)

// IsOdd reports whether n is odd.
func IsOdd(n int64) bool {
	return n%2 != 0
}

// IsPowerOfTwo reports whether n is a positive integral power of two.
// Zero and negative numbers are not powers of two.
func IsPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// RMS returns the population root-mean-square of data.
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range data {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(data)))
}

// PV returns the peak-to-valley range (max - min) of data.
func PV(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	minVal, maxVal := data[0], data[0]
	for _, x := range data[1:] {
		if x < minVal {
			minVal = x
		}

		if x > maxVal {
			maxVal = x
		}
	}

	return maxVal - minVal
}

// Finite returns the finite subset of data, dropping NaN and Inf values.
// Aperture-masked wavefront grids use NaN outside the clear aperture, so
// statistics over them are taken on the finite subset.
func Finite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, x := range data {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}

	return out
}

// ECDF returns the empirical cumulative distribution of the samples: the
// sorted unique values and, for each, the fraction of samples at or below it.
func ECDF(samples []float64) (values, cumulative []float64, err error) {
	if len(samples) == 0 {
		return nil, nil, ErrEmptyInput
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	n := float64(len(sorted))

	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			// Duplicate: advance the rank of the existing unique value.
			cumulative[len(cumulative)-1] = float64(i+1) / n
			continue
		}

		values = append(values, v)
		cumulative = append(cumulative, float64(i+1)/n)
	}

	return values, cumulative, nil
}

// GammaCorrect remaps data element-wise by out = in^(1/encoding).
// An encoding of 1 is the identity. Returns a new slice.
func GammaCorrect(data []float64, encoding float64) ([]float64, error) {
	if err := validateEncoding(encoding); err != nil {
		return nil, err
	}

	out := make([]float64, len(data))
	if encoding == 1 {
		copy(out, data)
		return out, nil
	}

	inv := 1 / encoding
	for i, x := range data {
		out[i] = math.Pow(x, inv)
	}

	return out, nil
}

// GuaranteeArray coerces scalar numeric input into a one-element slice and
// passes slices through unchanged. Non-numeric input returns ErrNonNumeric.
func GuaranteeArray(v any) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return x, nil
	case float64:
		return []float64{x}, nil
	case float32:
		return []float64{float64(x)}, nil
	case int:
		return []float64{float64(x)}, nil
	case int64:
		return []float64{float64(x)}, nil
	default:
		return nil, ErrNonNumeric
	}
}

// SortXY sorts the paired arrays by ascending x, reordering y alongside.
// Both inputs are left unmodified.
func SortXY(x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}

	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return x[idx[a]] < x[idx[b]]
	})

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))

	for i, j := range idx {
		xs[i] = x[j]
		ys[i] = y[j]
	}

	return xs, ys, nil
}
