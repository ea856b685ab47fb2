package colorimetry

import "errors"

var (
	// ErrObserverUnavailable reports that spectral integration was requested
	// without a registered standard observer. Import the observer subpackage
	// to provide one.
	ErrObserverUnavailable = errors.New(
		"colorimetry: no standard observer registered; import github.com/cwbudde/algo-optics/colorimetry/observer")

	// ErrEmptyVisibleBand reports a spectrum with no samples inside the
	// 400-700 nm normalization window.
	ErrEmptyVisibleBand = errors.New("colorimetry: spectrum has no samples in the 400-700 nm band")

	errMismatchedLength = errors.New("colorimetry: wavelengths and values must have same length")
	errEmptySpectrum    = errors.New("colorimetry: spectrum must not be empty")
)
