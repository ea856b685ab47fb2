package plotting

import (
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-optics/colorimetry"
)

// DiagramOption configures CIE1976Diagram rendering.
type DiagramOption func(*diagramConfig)

type diagramConfig struct {
	samples int
	xlim    float64
	ylim    float64
}

func defaultDiagramConfig() diagramConfig {
	return diagramConfig{
		samples: 200,
		xlim:    0.7,
		ylim:    0.7,
	}
}

// WithDiagramSamples sets the raster resolution per axis.
func WithDiagramSamples(samples int) DiagramOption {
	return func(c *diagramConfig) {
		c.samples = samples
	}
}

// WithXLim sets the upper u' bound of the rendered region.
func WithXLim(xlim float64) DiagramOption {
	return func(c *diagramConfig) {
		if xlim > 0 {
			c.xlim = xlim
		}
	}
}

// WithYLim sets the upper v' bound of the rendered region.
func WithYLim(ylim float64) DiagramOption {
	return func(c *diagramConfig) {
		if ylim > 0 {
			c.ylim = ylim
		}
	}
}

// CIE1976Diagram renders the CIE 1976 u'v' chromaticity diagram: the region
// inside the spectral locus filled with sRGB colors, bounded by the locus
// outline and the line of purples. It requires a registered standard
// observer and fails with ErrObserverUnavailable otherwise.
func CIE1976Diagram(p *plot.Plot, opts ...DiagramOption) (*plot.Plot, error) {
	cfg := defaultDiagramConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.samples < 2 {
		return nil, errBadSamples
	}

	locus, err := spectralLocus()
	if err != nil {
		return nil, err
	}

	p = Share(p)

	addImage(p, rasterizeDiagram(locus, cfg), cfg.xlim, cfg.ylim)

	outline, err := plotter.NewLine(closedLocus(locus))
	if err != nil {
		return nil, err
	}

	outline.Width = vg.Points(1)
	outline.Color = color.Black
	p.Add(outline)

	p.X.Label.Text = "u'"
	p.Y.Label.Text = "v'"
	p.X.Min, p.X.Max = 0, cfg.xlim
	p.Y.Min, p.Y.Max = 0, cfg.ylim

	return p, nil
}

// spectralLocus samples the monochromatic locus from 400 to 700 nm in 10 nm
// steps through the registered observer.
func spectralLocus() ([]colorimetry.UV, error) {
	const (
		start = 400.0
		stop  = 700.0
		step  = 10.0
	)

	locus := make([]colorimetry.UV, 0, int((stop-start)/step)+1)

	for w := start; w <= stop; w += step {
		xyz, err := colorimetry.WavelengthToXYZ(w)
		if err != nil {
			return nil, err
		}

		locus = append(locus, xyz.UV())
	}

	return locus, nil
}

// rasterizeDiagram fills the interior of the locus polygon with the sRGB
// color of each chromaticity; pixels outside stay transparent.
func rasterizeDiagram(locus []colorimetry.UV, cfg diagramConfig) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cfg.samples, cfg.samples))

	for py := 0; py < cfg.samples; py++ {
		// Row 0 of the image is drawn at the top of the data rectangle.
		v := cfg.ylim * (float64(cfg.samples-1-py) + 0.5) / float64(cfg.samples)

		for px := 0; px < cfg.samples; px++ {
			u := cfg.xlim * (float64(px) + 0.5) / float64(cfg.samples)

			if !insideLocus(locus, u, v) {
				continue
			}

			xyz := colorimetry.UV{U: u, V: v}.XY().XYZ()
			img.SetRGBA(px, py, rgba(xyz.SRGB()))
		}
	}

	return img
}

// insideLocus reports whether (u, v) lies inside the closed locus polygon,
// using even-odd ray casting. The closing edge is the line of purples.
func insideLocus(locus []colorimetry.UV, u, v float64) bool {
	inside := false

	j := len(locus) - 1
	for i := 0; i < len(locus); i++ {
		ui, vi := locus[i].U, locus[i].V
		uj, vj := locus[j].U, locus[j].V

		if (vi > v) != (vj > v) && u < (uj-ui)*(v-vi)/(vj-vi)+ui {
			inside = !inside
		}

		j = i
	}

	return inside
}

func closedLocus(locus []colorimetry.UV) plotter.XYs {
	pts := make(plotter.XYs, 0, len(locus)+1)

	for _, uv := range locus {
		pts = append(pts, plotter.XY{X: uv.U, Y: uv.V})
	}

	pts = append(pts, plotter.XY{X: locus[0].U, Y: locus[0].V})

	return pts
}
