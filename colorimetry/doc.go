// Package colorimetry converts spectral power distributions and CIE color
// coordinates: Spectrum → XYZ → xyY/xy/u'v'/L*u*v* → sRGB.
//
// The coordinate transforms are closed-form and scalar; degenerate inputs
// (zero tristimulus sums, zero luminance) propagate as NaN or Inf following
// IEEE-754 division semantics so grid-wide pipelines complete without
// per-element special cases.
//
// Spectral integration needs a standard observer. The base package carries no
// color-matching tables; importing the observer subpackage registers the CIE
// 1931 2° observer:
//
//	import _ "github.com/cwbudde/algo-optics/colorimetry/observer"
//
// Without it, XYZFromSpectrum and friends return ErrObserverUnavailable at
// the first call that needs the tables. Pure Spectrum and coordinate math
// works without the observer.
package colorimetry
