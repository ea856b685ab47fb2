// Package psf propagates a pupil wavefront to the image plane. The
// point-spread function is the squared magnitude of the Fourier transform of
// the complex pupil function, computed on a zero-padded grid and normalized
// to unit peak.
package psf

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-optics/numeric"
	"github.com/cwbudde/algo-optics/pupil"
	"github.com/cwbudde/algo-optics/sampling"
)

// PSF is a sampled point-spread function.
type PSF struct {
	Data          *numeric.Grid
	Samples       int
	SampleSpacing float64   // µm in the image plane
	Unit          []float64 // image-plane axis, µm, centered on the peak
}

// Option configures PSF propagation.
type Option func(*config)

type config struct {
	efl float64
	pad int
}

func defaultConfig() config {
	return config{
		efl: 1,
		pad: 2,
	}
}

// WithEFL sets the effective focal length in millimeters.
func WithEFL(efl float64) Option {
	return func(c *config) {
		if efl > 0 {
			c.efl = efl
		}
	}
}

// WithPadFactor sets the zero-padding factor applied before the transform.
// Larger factors sample the PSF more finely.
func WithPadFactor(pad int) Option {
	return func(c *config) {
		if pad >= 1 {
			c.pad = pad
		}
	}
}

// FromPupil computes the PSF of a pupil by Fourier propagation.
func FromPupil(p *pupil.Pupil, opts ...Option) (*PSF, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := nextPowerOfTwo(p.Samples * cfg.pad)

	field, err := transform2D(p.Fcn, p.Samples, n)
	if err != nil {
		return nil, err
	}

	power, err := numeric.NewGrid(n, n)
	if err != nil {
		return nil, err
	}

	re := make([]float64, len(field))
	im := make([]float64, len(field))
	for i, v := range field {
		re[i] = real(v)
		im[i] = imag(v)
	}

	vecmath.Power(power.Data, re, im)
	fftshift(power)

	peak := floats.Max(power.Data)
	if peak > 0 {
		vecmath.ScaleBlock(power.Data, power.Data, 1/peak)
	}

	spacing, err := sampling.PupilToPSF(p.SampleSpacing, n, p.Wavelength, cfg.efl)
	if err != nil {
		return nil, err
	}

	axis := make([]float64, n)
	for i := range axis {
		axis[i] = (float64(i) - float64(n/2)) * spacing
	}

	return &PSF{
		Data:          power,
		Samples:       n,
		SampleSpacing: spacing,
		Unit:          axis,
	}, nil
}

// Peak returns the maximum intensity, 1 for a normalized PSF.
func (p *PSF) Peak() float64 {
	return floats.Max(p.Data.Data)
}

// SliceX returns the image-plane axis and the intensity cross-section
// through the center row.
func (p *PSF) SliceX() (unit, intensity []float64) {
	row := p.Data.Row(p.Samples / 2)
	return p.Unit, append([]float64(nil), row...)
}

// transform2D embeds the src square grid (size srcN) centered in an n-by-n
// zero-padded grid and applies row-column FFTs.
func transform2D(src []complex128, srcN, n int) ([]complex128, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	grid := make([]complex128, n*n)

	offset := (n - srcN) / 2
	for r := 0; r < srcN; r++ {
		copy(grid[(r+offset)*n+offset:(r+offset)*n+offset+srcN], src[r*srcN:(r+1)*srcN])
	}

	scratch := make([]complex128, n)

	// Rows.
	for r := 0; r < n; r++ {
		row := grid[r*n : (r+1)*n]
		if err := plan.Forward(scratch, row); err != nil {
			return nil, err
		}

		copy(row, scratch)
	}

	// Columns.
	col := make([]complex128, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			col[r] = grid[r*n+c]
		}

		if err := plan.Forward(scratch, col); err != nil {
			return nil, err
		}

		for r := 0; r < n; r++ {
			grid[r*n+c] = scratch[r]
		}
	}

	return grid, nil
}

// fftshift swaps grid quadrants so the zero-frequency sample moves to the
// center. The grid size must be even, which padding to a power of two
// guarantees.
func fftshift(g *numeric.Grid) {
	n := g.Cols
	h := n / 2

	for r := 0; r < h; r++ {
		for c := 0; c < n; c++ {
			r2 := r + h
			c2 := (c + h) % n

			v1 := g.At(r, c)
			g.Set(r, c, g.At(r2, c2))
			g.Set(r2, c2, v1)
		}
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
