// Package plotting renders spectra, colored polylines, and CIE chromaticity
// diagrams onto gonum/plot surfaces.
//
// Every renderer takes an optional destination plot: pass nil to create a
// fresh one, or pass an existing handle to layer onto it. The same handle is
// returned either way so calls compose.
package plotting

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-optics/colorimetry"
)

// Share returns the supplied plot, or a new one when nil. It mirrors the
// create-if-absent, reuse-if-supplied policy every renderer follows.
func Share(p *plot.Plot) *plot.Plot {
	if p != nil {
		return p
	}

	return plot.New()
}

// SpectrumLine plots a spectrum as a wavelength/transmission line.
func SpectrumLine(p *plot.Plot, s *colorimetry.Spectrum) (*plot.Plot, error) {
	if s == nil || len(s.Wavelengths) == 0 {
		return nil, errEmptyData
	}

	if len(s.Wavelengths) != len(s.Values) {
		return nil, errMismatchedData
	}

	p = Share(p)

	pts := make(plotter.XYs, len(s.Wavelengths))
	for i := range pts {
		pts[i] = plotter.XY{X: s.Wavelengths[i], Y: s.Values[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}

	line.Width = vg.Points(1)
	p.Add(line)

	p.X.Label.Text = "Wavelength λ [nm]"
	p.Y.Label.Text = "Transmission [%]"

	return p, nil
}

// Colorline plots a polyline whose color sweeps the hue circle along its
// length, one segment per sample pair.
func Colorline(p *plot.Plot, x, y []float64) (*plot.Plot, error) {
	if len(x) < 2 {
		return nil, errEmptyData
	}

	if len(x) != len(y) {
		return nil, errMismatchedData
	}

	p = Share(p)

	segments := len(x) - 1
	for i := 0; i < segments; i++ {
		pts := plotter.XYs{
			{X: x[i], Y: y[i]},
			{X: x[i+1], Y: y[i+1]},
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}

		hue := 300 * float64(i) / float64(segments)
		line.LineStyle.Color = colorful.Hsv(hue, 1, 1)
		line.Width = vg.Points(2)

		p.Add(line)
	}

	return p, nil
}

// rgba adapts a clamped colorful color for image rasterization.
func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// addImage places img over the data rectangle [0,xmax]x[0,ymax].
func addImage(p *plot.Plot, img image.Image, xmax, ymax float64) {
	p.Add(plotter.NewImage(img, 0, 0, xmax, ymax))
}
