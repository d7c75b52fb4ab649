// Package matrix_test contains unit tests for the rank kernel.
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Kirill20202/matrix-multiplication/matrix"
)

func MustRank(t *testing.T, rows [][]float64, opts ...matrix.Option) int {
	t.Helper()
	r, err := matrix.Rank(MustFromRows(t, rows), opts...)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	return r
}

func TestRank_Identity(t *testing.T) {
	for _, n := range []int{1, 2, 4, 6} {
		t.Run(fmt.Sprintf("I_%d", n), func(t *testing.T) {
			I, err := matrix.NewIdentity(n)
			if err != nil {
				t.Fatalf("NewIdentity(%d): %v", n, err)
			}
			r, err := matrix.Rank(I)
			if err != nil {
				t.Fatalf("Rank: %v", err)
			}
			if r != n {
				t.Fatalf("rank(I_%d): got %d, want %d", n, r, n)
			}
		})
	}
}

func TestRank_ZeroMatrix(t *testing.T) {
	z, err := matrix.NewZeros(3, 4)
	if err != nil {
		t.Fatalf("NewZeros: %v", err)
	}
	r, err := matrix.Rank(z)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if r != 0 {
		t.Fatalf("rank of all-zero matrix: got %d, want 0", r)
	}
}

func TestRank_KnownCases(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want int
	}{
		// A classic rank-2 square: rows are an arithmetic progression.
		{"9-grid", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 2},
		// Outer product of two vectors is always rank 1.
		{"outer product", [][]float64{{2, 4, 6}, {3, 6, 9}, {5, 10, 15}}, 1},
		// Full-rank rectangular, more columns than rows.
		{"wide full rank", [][]float64{{1, 0, 2, 0}, {0, 1, 0, 2}}, 2},
		// Tall matrix with one dependent row.
		{"tall dependent", [][]float64{{1, 2}, {2, 4}, {0, 1}}, 2},
		// Leading zero column is skipped, not fatal.
		{"zero column", [][]float64{{0, 1, 2}, {0, 3, 4}}, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := MustRank(t, tc.rows); got != tc.want {
				t.Fatalf("rank: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRank_NilInput(t *testing.T) {
	if _, err := matrix.Rank(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("got %v, want ErrNilMatrix", err)
	}
}

func TestRank_ToleranceOption(t *testing.T) {
	// A second row of 1e-6 noise counts as independent under the default
	// tolerance and collapses under a coarse one.
	rows := [][]float64{{1, 0}, {0, 1e-6}}

	if got := MustRank(t, rows); got != 2 {
		t.Fatalf("default tolerance: got %d, want 2", got)
	}
	if got := MustRank(t, rows, matrix.WithPivotTolerance(1e-3)); got != 1 {
		t.Fatalf("coarse tolerance: got %d, want 1", got)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	if _, err := matrix.Rank(m); err != nil {
		t.Fatalf("Rank: %v", err)
	}
	CompareInDelta(t, [][]float64{{1, 2}, {3, 4}}, m, 0)
}
