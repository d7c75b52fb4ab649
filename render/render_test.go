package render_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirill20202/matrix-multiplication/matrix"
	"github.com/Kirill20202/matrix-multiplication/parse"
	"github.com/Kirill20202/matrix-multiplication/render"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestNumber_RoundsArtifactsAway(t *testing.T) {
	// The classic artifact: 0.1+0.2 is 0.30000000000000004 in float64.
	assert.Equal(t, "0.3", render.Number(0.1+0.2))
	assert.Equal(t, "19", render.Number(19.0))
	assert.Equal(t, "-3.5", render.Number(-3.5))
	assert.Equal(t, "1e+20", render.Number(1e20))
}

func TestGrid(t *testing.T) {
	m := mustRows(t, [][]float64{{19, 22}, {43, 50}})

	got, err := render.Grid(m)
	require.NoError(t, err)
	assert.Equal(t, "19 22\n43 50", got)
}

func TestPretty(t *testing.T) {
	m := mustRows(t, [][]float64{{19, 22}, {43, 50}})

	got, err := render.Pretty(m)
	require.NoError(t, err)
	assert.Equal(t, "[\n  [19, 22],\n  [43, 50]\n]", got)
}

func TestResult_DualFormat(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}})

	got, err := render.Result(m)
	require.NoError(t, err)
	assert.Equal(t, "1 2\n\n[\n  [1, 2]\n]", got)
}

// TestGridRoundTrip: parsing a rendered grid must reproduce the matrix
// within 1e-9.
func TestGridRoundTrip(t *testing.T) {
	src := mustRows(t, [][]float64{
		{0.1 + 0.2, -7, 1e-3},
		{math.Pi, 2.0 / 3.0, 1e20},
	})

	grid, err := render.Grid(src)
	require.NoError(t, err)

	back, err := parse.Matrix(grid, "left")
	require.NoError(t, err)
	require.Equal(t, src.Rows(), back.Rows())
	require.Equal(t, src.Cols(), back.Cols())

	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			want, err := src.At(i, j)
			require.NoError(t, err)
			got, err := back.At(i, j)
			require.NoError(t, err)
			// Relative tolerance keeps the huge-magnitude column honest.
			tol := 1e-9 * math.Max(1, math.Abs(want))
			assert.InDelta(t, want, got, tol, "element [%d,%d]", i, j)
		}
	}
}
