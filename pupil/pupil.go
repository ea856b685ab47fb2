package pupil

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-optics/numeric"
)

// Pupil is a sampled wavefront across a circular clear aperture.
type Pupil struct {
	Wavelength    float64 // µm
	EPD           float64 // entrance pupil diameter, mm
	Samples       int
	SampleSpacing float64 // mm
	OPDUnit       Unit
	OPDLabel      string // label as supplied by the caller

	Unit     []float64     // spatial axis, mm, centered on the optical axis
	Rho, Phi *numeric.Grid // normalized polar coordinates
	Phase    *numeric.Grid // OPD in OPDUnit; NaN outside the aperture
	Fcn      []complex128  // complex pupil function, row-major Samples x Samples
}

// Option configures pupil construction.
type Option func(*config)

type config struct {
	samples    int
	epd        float64
	wavelength float64
	opdLabel   string
	field      float64
	terms      []SeidelTerm
}

func defaultConfig() config {
	return config{
		samples:    128,
		epd:        1,
		wavelength: 0.55,
		opdLabel:   "waves",
		field:      1,
	}
}

// WithSamples sets the grid size per axis.
func WithSamples(n int) Option {
	return func(c *config) {
		if n > 1 {
			c.samples = n
		}
	}
}

// WithEPD sets the entrance pupil diameter in millimeters.
func WithEPD(epd float64) Option {
	return func(c *config) {
		if epd > 0 {
			c.epd = epd
		}
	}
}

// WithWavelength sets the wavelength in microns.
func WithWavelength(wavelength float64) Option {
	return func(c *config) {
		if wavelength > 0 {
			c.wavelength = wavelength
		}
	}
}

// WithOPDUnit sets the unit OPD values are expressed in, by label.
func WithOPDUnit(label string) Option {
	return func(c *config) {
		c.opdLabel = label
	}
}

// New builds an unaberrated pupil: zero OPD across the clear aperture.
func New(opts ...Option) (*Pupil, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return build(cfg)
}

func build(cfg config) (*Pupil, error) {
	unit, err := ParseUnit(cfg.opdLabel)
	if err != nil {
		return nil, err
	}

	n := cfg.samples
	radius := cfg.epd / 2
	spacing := cfg.epd / float64(n)

	// FFT-centered axis: sample n/2 sits exactly on the optical axis, so
	// center-row and center-column slices are true on-axis cross-sections.
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = (float64(i) - float64(n/2)) * spacing
	}

	rho, err := numeric.NewGrid(n, n)
	if err != nil {
		return nil, err
	}

	phi, err := numeric.NewGrid(n, n)
	if err != nil {
		return nil, err
	}

	phase, err := numeric.NewGrid(n, n)
	if err != nil {
		return nil, err
	}

	for r := 0; r < n; r++ {
		y := axis[r]
		for c := 0; c < n; c++ {
			x := axis[c]

			rho.Set(r, c, math.Hypot(x, y)/radius)

			// Angle measured from the +y axis so an odd cos(phi) term (tilt,
			// coma) vanishes along the x axis.
			phi.Set(r, c, math.Atan2(x, y))
		}
	}

	p := &Pupil{
		Wavelength:    cfg.wavelength,
		EPD:           cfg.epd,
		Samples:       n,
		SampleSpacing: spacing,
		OPDUnit:       unit,
		OPDLabel:      cfg.opdLabel,
		Unit:          axis,
		Rho:           rho,
		Phi:           phi,
		Phase:         phase,
	}

	for _, term := range cfg.terms {
		applyTerm(p, cfg.field, term)
	}

	p.mask()
	p.buildFcn()

	return p, nil
}

// mask marks OPD samples outside the clear aperture as NaN.
func (p *Pupil) mask() {
	for i, r := range p.Rho.Data {
		if r > 1 {
			p.Phase.Data[i] = math.NaN()
		}
	}
}

// buildFcn computes the complex pupil function: unit amplitude inside the
// aperture with the OPD as phase, zero outside.
func (p *Pupil) buildFcn() {
	scale := p.OPDUnit.toWaves(p.Wavelength)

	p.Fcn = make([]complex128, len(p.Phase.Data))
	for i, opd := range p.Phase.Data {
		if math.IsNaN(opd) {
			continue
		}

		p.Fcn[i] = cmplx.Exp(complex(0, 2*math.Pi*opd*scale))
	}
}

// PV returns the peak-to-valley wavefront error over the clear aperture.
func (p *Pupil) PV() float64 {
	return numeric.PV(numeric.Finite(p.Phase.Data))
}

// RMS returns the RMS wavefront error over the clear aperture.
func (p *Pupil) RMS() float64 {
	return numeric.RMS(numeric.Finite(p.Phase.Data))
}

// SliceX returns the spatial axis and the OPD cross-section along the x
// axis (the center row). Samples outside the aperture are NaN.
func (p *Pupil) SliceX() (unit, opd []float64) {
	row := p.Phase.Row(p.Samples / 2)
	out := append([]float64(nil), row...)

	return p.Unit, out
}

// SliceY returns the spatial axis and the OPD cross-section along the y
// axis (the center column).
func (p *Pupil) SliceY() (unit, opd []float64) {
	c := p.Samples / 2
	out := make([]float64, p.Samples)
	for r := 0; r < p.Samples; r++ {
		out[r] = p.Phase.At(r, c)
	}

	return p.Unit, out
}
