package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput reports an empty input slice or grid.
	ErrEmptyInput = errors.New("numeric: empty input")

	// ErrLengthMismatch reports paired slices of different lengths.
	ErrLengthMismatch = errors.New("numeric: paired inputs must have same length")

	// ErrNonNumeric reports input that cannot be coerced to a float64 array.
	ErrNonNumeric = errors.New("numeric: input is not numeric")
)

func validateSpan(span, length int) error {
	if span > length {
		return fmt.Errorf("numeric: smoothing span %d exceeds input length %d", span, length)
	}
	return nil
}

func validateAxis(axis int) error {
	if axis != 0 && axis != 1 {
		return fmt.Errorf("numeric: axis must be 0 or 1: %d", axis)
	}
	return nil
}

func validateEncoding(encoding float64) error {
	if encoding <= 0 {
		return fmt.Errorf("numeric: gamma encoding must be > 0: %f", encoding)
	}
	return nil
}

func validateGridShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("numeric: grid shape must be positive: %dx%d", rows, cols)
	}
	return nil
}
