package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a smoothing window function.
type Type int

const (
	// TypeFlat is the rectangular (moving average) window.
	TypeFlat Type = iota
	TypeHanning
	TypeHamming
	TypeBartlett
	TypeBlackman
)

var names = map[Type]string{
	TypeFlat:     "flat",
	TypeHanning:  "hanning",
	TypeHamming:  "hamming",
	TypeBartlett: "bartlett",
	TypeBlackman: "blackman",
}

// String returns the canonical lower-case name of the window type.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}

	return "unknown"
}

// Parse resolves a window name to its Type. Names are case-insensitive.
func Parse(name string) (Type, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for t, n := range names {
		if n == lower {
			return t, nil
		}
	}

	return 0, unknownName(name)
}

// Types returns all supported window types in declaration order.
func Types() []Type {
	return []Type{TypeFlat, TypeHanning, TypeHamming, TypeBartlett, TypeBlackman}
}

var (
	hanningCoeffs  = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Generate returns symmetric window coefficients of the given length.
func Generate(t Type, length int) ([]float64, error) {
	if length <= 0 {
		return nil, validateLength(length)
	}

	if _, ok := names[t]; !ok {
		return nil, unknownType(t)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length))
	}

	return out, nil
}

// Flat returns rectangular window coefficients.
func Flat(size int) ([]float64, error) {
	return Generate(TypeFlat, size)
}

// Hanning returns Hann window coefficients.
func Hanning(size int) ([]float64, error) {
	return Generate(TypeHanning, size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int) ([]float64, error) {
	return Generate(TypeHamming, size)
}

// Bartlett returns triangular window coefficients with zero-valued endpoints.
func Bartlett(size int) ([]float64, error) {
	return Generate(TypeBartlett, size)
}

// Blackman returns 3-term Blackman window coefficients.
func Blackman(size int) ([]float64, error) {
	return Generate(TypeBlackman, size)
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) error {
	if len(buf) == 0 {
		return nil
	}

	coeffs, err := Generate(t, len(buf))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeFlat:
		return 1
	case TypeHanning:
		return cosineFromCoeffs(x, hanningCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}
