// Package matrix_test: shared helpers for the matrix test suite.
package matrix_test

import (
	"math"
	"testing"

	"github.com/Kirill20202/matrix-multiplication/matrix"
)

// MustFromRows builds a Dense from rows or fails the test immediately.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}
	return m
}

// MustAt reads an element or fails the test immediately.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// CompareInDelta asserts m equals want element-by-element within tol.
func CompareInDelta(t *testing.T, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int
	var got float64
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			got = MustAt(t, m, i, j)
			if math.Abs(got-want[i][j]) > tol {
				t.Fatalf("element [%d,%d]: got %g, want %g (tol %g)", i, j, got, want[i][j], tol)
			}
		}
	}
}

// hide wraps a Matrix to conceal its concrete type, forcing kernels onto
// the interface fallback path.
type hide struct{ matrix.Matrix }
