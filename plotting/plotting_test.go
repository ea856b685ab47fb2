package plotting

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-optics/colorimetry"
	_ "github.com/cwbudde/algo-optics/colorimetry/observer"
	"github.com/cwbudde/algo-optics/internal/testutil"
	"github.com/cwbudde/algo-optics/numeric"
)

func TestShareCreatesWhenNil(t *testing.T) {
	p := Share(nil)
	require.NotNil(t, p)
}

func TestShareReusesSuppliedPlot(t *testing.T) {
	p := plot.New()
	require.Same(t, p, Share(p))
}

func TestSpectrumLineReturnsHandle(t *testing.T) {
	wvl, vals := testutil.GaussianSpectrum(550, 40)

	s, err := colorimetry.NewSpectrum(wvl, vals)
	require.NoError(t, err)

	p, err := SpectrumLine(nil, s)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, "Wavelength λ [nm]", p.X.Label.Text)
}

func TestSpectrumLineRejectsEmpty(t *testing.T) {
	_, err := SpectrumLine(nil, nil)
	require.ErrorIs(t, err, errEmptyData)
}

func TestColorlineReturnsHandle(t *testing.T) {
	x := numeric.Linspace(0, 1, 32)
	y := numeric.Linspace(1, 0, 32)

	p, err := Colorline(nil, x, y)
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestColorlineLayersOntoSuppliedPlot(t *testing.T) {
	base := plot.New()

	p, err := Colorline(base, []float64{0, 1, 2}, []float64{0, 1, 0})
	require.NoError(t, err)
	require.Same(t, base, p)
}

func TestColorlineRejectsMismatchedLengths(t *testing.T) {
	_, err := Colorline(nil, []float64{0, 1, 2}, []float64{0, 1})
	require.ErrorIs(t, err, errMismatchedData)
}

func TestCIE1976DiagramRenders(t *testing.T) {
	p, err := CIE1976Diagram(nil, WithDiagramSamples(32))
	require.NoError(t, err)
	require.NotNil(t, p)

	require.Equal(t, "u'", p.X.Label.Text)
	require.Equal(t, "v'", p.Y.Label.Text)
	require.InDelta(t, 0.7, p.X.Max, 1e-12)
}

func TestCIE1976DiagramHonorsLimits(t *testing.T) {
	p, err := CIE1976Diagram(nil,
		WithDiagramSamples(16),
		WithXLim(0.6),
		WithYLim(0.5),
	)
	require.NoError(t, err)
	require.InDelta(t, 0.6, p.X.Max, 1e-12)
	require.InDelta(t, 0.5, p.Y.Max, 1e-12)
}

func TestCIE1976DiagramRejectsTinyRaster(t *testing.T) {
	_, err := CIE1976Diagram(nil, WithDiagramSamples(1))
	require.ErrorIs(t, err, errBadSamples)
}

func TestSpectralLocusLiesInsideItselfAtWhite(t *testing.T) {
	locus, err := spectralLocus()
	require.NoError(t, err)
	require.Len(t, locus, 31)

	// Equal-energy white sits well inside the locus.
	white := colorimetry.XYZ{X: 1, Y: 1, Z: 1}.UV()
	require.True(t, insideLocus(locus, white.U, white.V))

	// A point far outside the gamut does not.
	require.False(t, insideLocus(locus, 0.69, 0.69))
}
