package colorimetry

import (
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Visible band used for spectrum normalization, in nanometers.
const (
	visibleBandLow  = 400.0
	visibleBandHigh = 700.0
)

// Spectrum pairs wavelengths (nm, ascending) with intensity or transmission
// values in arbitrary units.
type Spectrum struct {
	Wavelengths []float64
	Values      []float64
}

// NewSpectrum builds a spectrum from paired wavelength and value arrays.
func NewSpectrum(wavelengths, values []float64) (*Spectrum, error) {
	if len(wavelengths) == 0 {
		return nil, errEmptySpectrum
	}

	if len(wavelengths) != len(values) {
		return nil, errMismatchedLength
	}

	return &Spectrum{Wavelengths: wavelengths, Values: values}, nil
}

// Normalize returns a new spectrum scaled so the peak value within the
// 400-700 nm visible band is 1.
func (s *Spectrum) Normalize() (*Spectrum, error) {
	low := sort.SearchFloat64s(s.Wavelengths, visibleBandLow)
	high := sort.SearchFloat64s(s.Wavelengths, visibleBandHigh)

	if low >= high {
		return nil, ErrEmptyVisibleBand
	}

	peak := floats.Max(s.Values[low:high])
	if peak == 0 {
		return nil, ErrEmptyVisibleBand
	}

	values := make([]float64, len(s.Values))
	vecmath.ScaleBlock(values, s.Values, 1/peak)

	return &Spectrum{Wavelengths: s.Wavelengths, Values: values}, nil
}
