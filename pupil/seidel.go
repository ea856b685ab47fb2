package pupil

import "math"

// SeidelTerm is one classical aberration monomial
// W_klm * field^k * rho^l * cos^m(phi).
type SeidelTerm struct {
	K, L, M   int
	Magnitude float64 // in the pupil's OPD unit
}

// WithField sets the normalized field height H applied to every Seidel term.
func WithField(h float64) Option {
	return func(c *config) {
		c.field = h
	}
}

// WithTerm adds a Seidel aberration monomial W_klm of the given magnitude.
func WithTerm(k, l, m int, magnitude float64) Option {
	return func(c *config) {
		c.terms = append(c.terms, SeidelTerm{K: k, L: l, M: m, Magnitude: magnitude})
	}
}

// Common third-order terms by their W_klm designations.

// WithTilt adds W111 (wavefront tilt).
func WithTilt(magnitude float64) Option { return WithTerm(1, 1, 1, magnitude) }

// WithDefocus adds W020.
func WithDefocus(magnitude float64) Option { return WithTerm(0, 2, 0, magnitude) }

// WithSpherical adds W040.
func WithSpherical(magnitude float64) Option { return WithTerm(0, 4, 0, magnitude) }

// WithComa adds W131.
func WithComa(magnitude float64) Option { return WithTerm(1, 3, 1, magnitude) }

// WithAstigmatism adds W222.
func WithAstigmatism(magnitude float64) Option { return WithTerm(2, 2, 2, magnitude) }

// NewSeidel builds a pupil whose OPD is the sum of the supplied Seidel
// aberration terms evaluated at the configured field height.
func NewSeidel(opts ...Option) (*Pupil, error) {
	return New(opts...)
}

func applyTerm(p *Pupil, field float64, term SeidelTerm) {
	coeff := term.Magnitude * math.Pow(field, float64(term.K))

	for i := range p.Phase.Data {
		rho := p.Rho.Data[i]
		phi := p.Phi.Data[i]

		v := coeff * math.Pow(rho, float64(term.L))
		if term.M != 0 {
			v *= math.Pow(math.Cos(phi), float64(term.M))
		}

		p.Phase.Data[i] += v
	}
}
