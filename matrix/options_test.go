// Package matrix_test: numeric-policy option tests.
package matrix_test

import (
	"math"
	"testing"

	"github.com/Kirill20202/matrix-multiplication/matrix"
)

func TestWithPivotTolerance_PanicsOnNonsense(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("WithPivotTolerance(%g) must panic", eps)
				}
			}()
			matrix.WithPivotTolerance(eps)
		}()
	}
}

func TestWithPivotTolerance_ZeroIsLegal(t *testing.T) {
	// eps = 0 means "only an exact zero pivot is singular" — unusual but
	// well-defined, so the constructor must accept it.
	m := MustFromRows(t, [][]float64{
		{1e-100, 0, 0},
		{0, 1e-100, 0},
		{0, 0, 1e-100},
	})

	d, err := matrix.Det(m, matrix.WithPivotTolerance(0))
	if err != nil {
		t.Fatalf("Det: %v", err)
	}
	if d == 0 {
		t.Fatalf("tiny but nonzero pivots must survive eps=0, got det 0")
	}
}

func TestDefaultPivotToleranceValue(t *testing.T) {
	if matrix.DefaultPivotTolerance != 1e-10 {
		t.Fatalf("DefaultPivotTolerance: got %g, want 1e-10", matrix.DefaultPivotTolerance)
	}
}
