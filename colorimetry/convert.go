package colorimetry

import "math"

// CIE 1976 segment constants.
const (
	CIEKappa   = 24389.0 / 27.0
	CIEEpsilon = 216.0 / 24389.0
)

// D50 reference white tristimulus values.
var WhiteD50 = XYZ{X: 0.9642, Y: 1.0, Z: 0.8251}

// XYZ holds CIE 1931 tristimulus values.
type XYZ struct {
	X, Y, Z float64
}

// XY holds a chromaticity coordinate pair.
type XY struct {
	X, Y float64
}

// XYY holds CIE xyY coordinates: chromaticity (X, Y) plus luminance Lum.
type XYY struct {
	X, Y float64
	Lum  float64
}

// UV holds CIE 1976 u'v' chromaticity coordinates.
type UV struct {
	U, V float64
}

// Luv holds CIE 1976 L*u*v* coordinates.
type Luv struct {
	L, U, V float64
}

// XYY projects tristimulus values onto xyY. A zero tristimulus sum yields
// NaN chromaticity.
func (c XYZ) XYY() XYY {
	sum := c.X + c.Y + c.Z

	return XYY{
		X:   c.X / sum,
		Y:   c.Y / sum,
		Lum: c.Y,
	}
}

// XY projects tristimulus values onto xy chromaticity.
func (c XYZ) XY() XY {
	return c.XYY().XY()
}

// UV projects tristimulus values onto u'v' chromaticity. A zero denominator
// yields NaN coordinates.
func (c XYZ) UV() UV {
	den := c.X + 15*c.Y + 3*c.Z

	return UV{
		U: (4 * c.X) / den,
		V: (9 * c.Y) / den,
	}
}

// Luv converts tristimulus values to CIE 1976 L*u*v* against the D50
// reference white.
func (c XYZ) Luv() Luv {
	yr := c.Y / WhiteD50.Y

	var l float64
	if yr > CIEEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = CIEKappa * yr
	}

	uv := c.UV()
	uvr := WhiteD50.UV()

	return Luv{
		L: l,
		U: 13 * l * (uv.U - uvr.U),
		V: 13 * l * (uv.V - uvr.V),
	}
}

// XY drops the luminance component.
func (c XYY) XY() XY {
	return XY{X: c.X, Y: c.Y}
}

// XYZ lifts xyY coordinates back to tristimulus values. Zero y chromaticity
// yields NaN/Inf components rather than an error.
func (c XYY) XYZ() XYZ {
	return XYZ{
		X: (c.X * c.Lum) / c.Y,
		Y: c.Lum,
		Z: ((1 - c.X - c.Y) * c.Lum) / c.Y,
	}
}

// XYY lifts chromaticity to xyY with unit luminance.
func (c XY) XYY() XYY {
	return XYY{X: c.X, Y: c.Y, Lum: 1}
}

// XYZ lifts chromaticity to tristimulus values with unit luminance.
func (c XY) XYZ() XYZ {
	return c.XYY().XYZ()
}

// XYZ inverts CIE 1976 L*u*v* against the D50 reference white. The L*-to-Y
// mapping follows the piecewise cubic/linear rule: Y = ((L+16)/116)^3 when
// L exceeds kappa*epsilon, else Y = L/kappa.
func (c Luv) XYZ() XYZ {
	var y float64
	if c.L > CIEEpsilon*CIEKappa {
		t := (c.L + 16) / 116
		y = t * t * t
	} else {
		y = c.L / CIEKappa
	}

	ref := WhiteD50
	den := ref.X + 15*ref.Y + 3*ref.Z
	u0 := 4 * ref.X / den
	v0 := 9 * ref.Y / den

	a := (52*c.L/(c.U+13*c.L*u0) - 1) / 3
	b := -5 * y
	cc := -1.0 / 3.0
	d := y * (39*c.L/(c.V+13*c.L*v0) - 5)

	x := (d - b) / (a - cc)
	z := x*a + b

	return XYZ{X: x, Y: y, Z: z}
}

// UV projects L*u*v* onto u'v' chromaticity by way of XYZ.
func (c Luv) UV() UV {
	return c.XYZ().UV()
}

// XY inverts the CIE 1976 u'v' chromaticity mapping back to CIE 1931 xy.
func (c UV) XY() XY {
	den := 6*c.U - 16*c.V + 12

	return XY{
		X: (9 * c.U) / den,
		Y: (4 * c.V) / den,
	}
}
