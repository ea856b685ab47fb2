package observer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-optics/colorimetry"
	"github.com/cwbudde/algo-optics/internal/testutil"
)

func TestImportRegistersObserver(t *testing.T) {
	require.True(t, colorimetry.HasObserver())
}

func TestTablesAreAligned(t *testing.T) {
	obs := CIE1931{}

	grid := obs.Wavelengths()
	xbar, ybar, zbar := obs.Bars()

	require.Len(t, xbar, len(grid))
	require.Len(t, ybar, len(grid))
	require.Len(t, zbar, len(grid))

	require.Equal(t, 360.0, grid[0])
	require.Equal(t, 780.0, grid[len(grid)-1])

	for i := 1; i < len(grid); i++ {
		require.Equal(t, 10.0, grid[i]-grid[i-1])
	}
}

func TestWavelengthToXYZMatchesTable(t *testing.T) {
	xyz, err := colorimetry.WavelengthToXYZ(550)
	require.NoError(t, err)

	require.InDelta(t, 0.43345, xyz.X, 1e-9)
	require.InDelta(t, 0.99495, xyz.Y, 1e-9)
	require.InDelta(t, 0.00875, xyz.Z, 1e-9)
}

func TestEqualEnergySpectrumIsNearCentroid(t *testing.T) {
	wvl := make([]float64, 0, 43)
	vals := make([]float64, 0, 43)
	for w := 360.0; w <= 780; w += 10 {
		wvl = append(wvl, w)
		vals = append(vals, 1)
	}

	s, err := colorimetry.NewSpectrum(wvl, vals)
	require.NoError(t, err)

	xyz, err := colorimetry.XYZFromSpectrum(s)
	require.NoError(t, err)

	// Equal-energy illuminant E sits at the chromaticity centroid.
	xy := xyz.XY()
	require.InDelta(t, 1.0/3.0, xy.X, 0.01)
	require.InDelta(t, 1.0/3.0, xy.Y, 0.01)

	// Flat unit spectrum normalizes to Y = 1.
	require.InDelta(t, 1.0, xyz.Y, 1e-9)
}

func TestGreenLineSpectrumIsHighLuminance(t *testing.T) {
	wvl, vals := testutil.GaussianSpectrum(555, 20)

	s, err := colorimetry.NewSpectrum(wvl, vals)
	require.NoError(t, err)

	xyz, err := colorimetry.XYZFromSpectrum(s)
	require.NoError(t, err)

	xy := xyz.XY()
	require.Greater(t, xy.Y, 0.5, "narrow green line should be far up the locus")
	require.InDelta(t, 0.33, xy.X, 0.12)

	luv, err := colorimetry.LuvFromSpectrum(s)
	require.NoError(t, err)
	require.Greater(t, luv.L, 0.0)
}
