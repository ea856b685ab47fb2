package colorimetry

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SRGB maps tristimulus values to a display-referred sRGB color, delegating
// the matrix and companding to go-colorful and clamping to the displayable
// gamut.
func (c XYZ) SRGB() colorful.Color {
	return colorful.Xyz(c.X, c.Y, c.Z).Clamped()
}

// SRGBValid reports whether the tristimulus values map to a finite sRGB
// color. NaN-masked grid points (outside a gamut boundary) are not valid.
func (c XYZ) SRGBValid() bool {
	return !math.IsNaN(c.X) && !math.IsNaN(c.Y) && !math.IsNaN(c.Z) &&
		!math.IsInf(c.X, 0) && !math.IsInf(c.Y, 0) && !math.IsInf(c.Z, 0)
}
