// Package window generates the named smoothing kernels used throughout the
// library: flat (rectangular), hanning, hamming, bartlett, and blackman.
//
// Windows are generated in symmetric form with unit peak. Use Parse to
// resolve a window by its lower-case name, for example when accepting
// user-supplied kernel names:
//
//	t, err := window.Parse("hanning")
//	coeffs, err := window.Generate(t, 9)
package window
