package numeric

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-optics/window"
)

// SmoothOption configures Smooth.
type SmoothOption func(*smoothConfig)

type smoothConfig struct {
	window window.Type
	span   int
}

func defaultSmoothConfig() smoothConfig {
	return smoothConfig{
		window: window.TypeFlat,
		span:   3,
	}
}

// WithWindow selects the smoothing kernel shape.
func WithWindow(t window.Type) SmoothOption {
	return func(c *smoothConfig) {
		c.window = t
	}
}

// WithWindowName selects the smoothing kernel by name ("flat", "hanning",
// "hamming", "bartlett", "blackman"). Unknown names surface as an error from
// Smooth.
func WithWindowName(name string) SmoothOption {
	return func(c *smoothConfig) {
		t, err := window.Parse(name)
		if err != nil {
			// Force Generate to reject during Smooth.
			c.window = window.Type(-1)
			return
		}

		c.window = t
	}
}

// WithSpan sets the kernel length in samples.
func WithSpan(span int) SmoothOption {
	return func(c *smoothConfig) {
		c.span = span
	}
}

// Smooth convolves data against a normalized window kernel and returns a new
// slice of the same length. The input is reflection-padded at both ends so
// edge samples are smoothed against their mirror images.
//
// Spans shorter than 3 return an unmodified copy. Spans longer than the input
// and unknown window kernels are rejected.
func Smooth(data []float64, opts ...SmoothOption) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := defaultSmoothConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateSpan(cfg.span, len(data)); err != nil {
		return nil, err
	}

	if cfg.span < 3 {
		return append([]float64(nil), data...), nil
	}

	kernel, err := window.Generate(cfg.window, cfg.span)
	if err != nil {
		return nil, err
	}

	normalizeKernel(kernel)

	padded := reflectPad(data, cfg.span-1)

	// Valid-mode correlation, trimmed so the output is centered on the input.
	full := make([]float64, len(padded)-cfg.span+1)
	scratch := make([]float64, cfg.span)

	for i := range full {
		vecmath.MulBlock(scratch, padded[i:i+cfg.span], kernel)
		full[i] = floats.Sum(scratch)
	}

	start := (cfg.span - 1) / 2

	return full[start : start+len(data)], nil
}

// normalizeKernel scales coefficients to unit sum so constant inputs are
// preserved exactly.
func normalizeKernel(kernel []float64) {
	sum := floats.Sum(kernel)
	if sum == 0 {
		return
	}

	vecmath.ScaleBlock(kernel, kernel, 1/sum)
}

// reflectPad extends data by pad samples of mirror reflection on each side,
// excluding the edge sample itself from the reflection.
func reflectPad(data []float64, pad int) []float64 {
	n := len(data)
	if pad > n-1 {
		pad = n - 1
	}

	out := make([]float64, 0, n+2*pad)

	for i := pad; i >= 1; i-- {
		out = append(out, data[i])
	}

	out = append(out, data...)

	for i := n - 2; i >= n-1-pad; i-- {
		out = append(out, data[i])
	}

	return out
}
