package testutil

import "math"

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Constant(1, n)
}

// GaussianSpectrum returns a synthetic emission spectrum: wavelengths from
// 380 to 780 nm in 5 nm steps with a Gaussian line centered at center nm
// with the given full width at half maximum.
func GaussianSpectrum(center, fwhm float64) (wavelengths, values []float64) {
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))

	for wvl := 380.0; wvl <= 780.0; wvl += 5 {
		d := (wvl - center) / sigma
		wavelengths = append(wavelengths, wvl)
		values = append(values, math.Exp(-0.5*d*d))
	}

	return wavelengths, values
}
