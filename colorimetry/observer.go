package colorimetry

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-optics/numeric"
)

// Observer supplies color-matching functions sampled on a fixed wavelength
// grid. Implementations register themselves via RegisterObserver; the
// canonical CIE 1931 2 degree observer lives in the observer subpackage.
type Observer interface {
	// Wavelengths returns the sample grid in nanometers, ascending.
	Wavelengths() []float64

	// Bars returns the x-bar, y-bar, z-bar color-matching values aligned
	// with the Wavelengths grid.
	Bars() (xbar, ybar, zbar []float64)
}

var registeredObserver Observer

// RegisterObserver installs the standard observer used for spectral
// integration. Typically called from an init function.
func RegisterObserver(o Observer) {
	registeredObserver = o
}

// HasObserver reports whether a standard observer has been registered.
func HasObserver() bool {
	return registeredObserver != nil
}

// XYZFromSpectrum integrates a spectrum against the registered standard
// observer. The spectrum is peak-normalized in the visible band and resampled
// onto the observer's wavelength grid before integration.
//
// Returns ErrObserverUnavailable when no observer is registered.
func XYZFromSpectrum(s *Spectrum) (XYZ, error) {
	if registeredObserver == nil {
		return XYZ{}, ErrObserverUnavailable
	}

	norm, err := s.Normalize()
	if err != nil {
		return XYZ{}, err
	}

	grid := registeredObserver.Wavelengths()
	xbar, ybar, zbar := registeredObserver.Bars()

	aligned, err := numeric.Resample(norm.Wavelengths, norm.Values, grid)
	if err != nil {
		return XYZ{}, err
	}

	scratch := make([]float64, len(grid))

	vecmath.MulBlock(scratch, aligned, xbar)
	x := floats.Sum(scratch)

	vecmath.MulBlock(scratch, aligned, ybar)
	y := floats.Sum(scratch)

	vecmath.MulBlock(scratch, aligned, zbar)
	z := floats.Sum(scratch)

	// Emissive normalization: k scales a flat unit spectrum to Y = 1 so the
	// result lives on the same [0,1] luminance scale as the reference white.
	k := 1 / floats.Sum(ybar)

	return XYZ{X: k * x, Y: k * y, Z: k * z}, nil
}

// LuvFromSpectrum integrates a spectrum to XYZ and converts to L*u*v*.
func LuvFromSpectrum(s *Spectrum) (Luv, error) {
	xyz, err := XYZFromSpectrum(s)
	if err != nil {
		return Luv{}, err
	}

	return xyz.Luv(), nil
}

// WavelengthToXYZ returns the tristimulus response of a monochromatic line
// at the given wavelength, interpolated on the observer grid.
func WavelengthToXYZ(wavelength float64) (XYZ, error) {
	if registeredObserver == nil {
		return XYZ{}, ErrObserverUnavailable
	}

	grid := registeredObserver.Wavelengths()
	xbar, ybar, zbar := registeredObserver.Bars()

	target := []float64{wavelength}

	x, err := numeric.Resample(grid, xbar, target)
	if err != nil {
		return XYZ{}, err
	}

	y, err := numeric.Resample(grid, ybar, target)
	if err != nil {
		return XYZ{}, err
	}

	z, err := numeric.Resample(grid, zbar, target)
	if err != nil {
		return XYZ{}, err
	}

	return XYZ{X: x[0], Y: y[0], Z: z[0]}, nil
}
