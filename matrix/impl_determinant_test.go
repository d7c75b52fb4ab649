// Package matrix_test contains unit tests for the determinant kernel.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Kirill20202/matrix-multiplication/matrix"
)

func TestDet_Identity(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		I, err := matrix.NewIdentity(n)
		if err != nil {
			t.Fatalf("NewIdentity(%d): %v", n, err)
		}
		d, err := matrix.Det(I)
		if err != nil {
			t.Fatalf("Det(I_%d): %v", n, err)
		}
		if d != 1 {
			t.Fatalf("Det(I_%d): got %g, want 1", n, d)
		}
	}
}

func TestDet_SmallOrders(t *testing.T) {
	// n=1: the single entry.
	one := MustFromRows(t, [][]float64{{-7.5}})
	if d, err := matrix.Det(one); err != nil || d != -7.5 {
		t.Fatalf("Det 1x1: got (%g, %v), want (-7.5, nil)", d, err)
	}

	// n=2: the direct cross-product formula.
	two := MustFromRows(t, [][]float64{{4, 7}, {2, 6}})
	if d, err := matrix.Det(two); err != nil || d != 10 {
		t.Fatalf("Det 2x2: got (%g, %v), want (10, nil)", d, err)
	}
}

func TestDet_SingularInputs(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
	}{
		{"zero row", [][]float64{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}}},
		{"rank deficient", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{"duplicate rows", [][]float64{{2, 4, 1}, {2, 4, 1}, {0, 1, 5}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Det(MustFromRows(t, tc.rows))
			if err != nil {
				t.Fatalf("Det: %v", err)
			}
			if d != 0 {
				t.Fatalf("Det of singular matrix: got %g, want exactly 0", d)
			}
		})
	}
}

func TestDet_SignUnderRowSwaps(t *testing.T) {
	// A permutation matrix has determinant ±1; this one is a single
	// transposition of I_3, so the sign must come out negative.
	p := MustFromRows(t, [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}})
	d, err := matrix.Det(p)
	if err != nil {
		t.Fatalf("Det: %v", err)
	}
	if d != -1 {
		t.Fatalf("Det of a transposition: got %g, want -1", d)
	}
}

func TestDet_NonSquare(t *testing.T) {
	rect := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.Det(rect)
	if !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("got %v, want ErrNonSquare", err)
	}
}

func TestDet_NilInput(t *testing.T) {
	if _, err := matrix.Det(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("got %v, want ErrNilMatrix", err)
	}
}

func TestDet_AgainstGonum(t *testing.T) {
	// Independent oracle on a well-conditioned 4x4.
	rows := [][]float64{
		{4, 2, 0.5, -1},
		{1, 5, 2, 3},
		{-2, 0.25, 6, 1},
		{3, -1, 1, 7},
	}
	got, err := matrix.Det(MustFromRows(t, rows))
	if err != nil {
		t.Fatalf("Det: %v", err)
	}

	want := mat.Det(mat.NewDense(4, 4, flatten(rows)))
	if math.Abs(got-want) > 1e-9*math.Abs(want) {
		t.Fatalf("got %g, gonum says %g", got, want)
	}
}

func TestDet_PivotToleranceOption(t *testing.T) {
	// Entries around 1e-6 are honest pivots under the default tolerance
	// but vanish under an aggressive one.
	m := MustFromRows(t, [][]float64{
		{1e-6, 0, 0},
		{0, 1e-6, 0},
		{0, 0, 1e-6},
	})

	d, err := matrix.Det(m)
	if err != nil {
		t.Fatalf("Det: %v", err)
	}
	if math.Abs(d-1e-18) > 1e-27 {
		t.Fatalf("default tolerance: got %g, want 1e-18", d)
	}

	d, err = matrix.Det(m, matrix.WithPivotTolerance(1e-3))
	if err != nil {
		t.Fatalf("Det: %v", err)
	}
	if d != 0 {
		t.Fatalf("coarse tolerance must declare singularity: got %g, want 0", d)
	}
}
