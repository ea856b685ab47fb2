package window

import (
	"errors"
	"fmt"
)

var errMismatchedLength = errors.New("window: samples and coefficients must have same length")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}
	return nil
}

func unknownName(name string) error {
	return fmt.Errorf("window: unknown window name %q", name)
}

func unknownType(t Type) error {
	return fmt.Errorf("window: unknown window type %d", int(t))
}
