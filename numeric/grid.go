package numeric

import "github.com/cwbudde/algo-vecmath"

// Grid is a dense row-major 2D array of float64 values.
type Grid struct {
	Rows, Cols int
	Data       []float64
}

// NewGrid allocates a zero-filled grid of the given shape.
func NewGrid(rows, cols int) (*Grid, error) {
	if err := validateGridShape(rows, cols); err != nil {
		return nil, err
	}

	return &Grid{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}, nil
}

// At returns the value at row r, column c.
func (g *Grid) At(r, c int) float64 {
	return g.Data[r*g.Cols+c]
}

// Set stores v at row r, column c.
func (g *Grid) Set(r, c int, v float64) {
	g.Data[r*g.Cols+c] = v
}

// Row returns the r-th row as a subslice of the backing data.
func (g *Grid) Row(r int) []float64 {
	return g.Data[r*g.Cols : (r+1)*g.Cols]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	copy(out.Data, g.Data)

	return out
}

// Fold reflects the grid about its center along the last axis, averaging the
// overlapped halves. The result has ceil(Cols/2) columns.
func Fold(g *Grid) (*Grid, error) {
	return FoldAxis(g, 1)
}

// FoldAxis reflects the grid about its center along the given axis (0 = rows,
// 1 = columns), averaging overlapped samples. The mirrored half is reversed
// along both axes so that point-symmetric data folds onto itself.
func FoldAxis(g *Grid, axis int) (*Grid, error) {
	if g == nil || len(g.Data) == 0 {
		return nil, ErrEmptyInput
	}

	if err := validateAxis(axis); err != nil {
		return nil, err
	}

	if axis == 0 {
		t := transpose(g)

		folded, err := FoldAxis(t, 1)
		if err != nil {
			return nil, err
		}

		return transpose(folded), nil
	}

	n := g.Cols
	half := n / 2
	outCols := n - half // ceil(n/2) for odd n, n/2 for even

	out, err := NewGrid(g.Rows, outCols)
	if err != nil {
		return nil, err
	}

	for r := 0; r < g.Rows; r++ {
		mr := g.Rows - 1 - r

		// Right half carried forward.
		copy(out.Row(r), g.Row(r)[half:])

		// Mirrored left half accumulated, then averaged.
		mirror := make([]float64, outCols)
		for i := 0; i < outCols; i++ {
			// Partner of column half+i, reflected about the center. For odd
			// widths the center column pairs with itself.
			j := half - 1 - i
			if n%2 != 0 {
				j = half - i
			}

			mirror[i] = g.At(mr, j)
		}

		vecmath.AddBlockInPlace(out.Row(r), mirror)
		vecmath.ScaleBlock(out.Row(r), out.Row(r), 0.5)
	}

	return out, nil
}

func transpose(g *Grid) *Grid {
	out := &Grid{Rows: g.Cols, Cols: g.Rows, Data: make([]float64, len(g.Data))}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out.Set(c, r, g.At(r, c))
		}
	}

	return out
}
