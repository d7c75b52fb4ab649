// SPDX-License-Identifier: MIT
// Package matrix: determinant kernel.
//
// Det computes the determinant of a square matrix via LU decomposition
// with partial pivoting. Small orders (n=1, n=2) use direct formulas for
// numerical simplicity; larger orders eliminate in place on a working
// copy, accumulating a sign flip per row swap. A pivot whose magnitude
// falls below the pivot tolerance marks the matrix singular and returns
// determinant 0 immediately.

package matrix

import (
	"fmt"
	"math"
)

// detSignPositive / detSignNegative track the permutation parity during
// pivoting; kept as named constants to avoid magic numbers in the kernel.
const (
	detSignPositive = 1.0
	detSignNegative = -1.0
)

// snapshot materializes any Matrix into a fresh *Dense working copy.
// Internal helper shared by Det and Rank: elimination mutates the copy,
// never the caller's matrix.
//
// Errors: propagated At failures from exotic Matrix implementations.
// Complexity: O(r*c) time and memory.
func snapshot(m Matrix) (*Dense, error) {
	// Fast-path: Clone of a *Dense is already a *Dense.
	if dm, ok := m.(*Dense); ok {
		return dm.Clone().(*Dense), nil
	}

	// Fallback: copy element-by-element through the interface.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// swapRows exchanges rows a and b of a Dense working copy in place.
// Internal; callers guarantee valid indices.
// Complexity: O(c).
func swapRows(d *Dense, a, b int) {
	if a == b {
		return
	}
	baseA, baseB := a*d.c, b*d.c
	for j := 0; j < d.c; j++ {
		d.data[baseA+j], d.data[baseB+j] = d.data[baseB+j], d.data[baseA+j]
	}
}

// Det computes the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); resolve the numeric policy
//     (pivot tolerance, default 1e-10).
//   - Stage 2: n=1 → the single entry; n=2 → a·d − b·c directly.
//   - Stage 3: snapshot m into a working copy; for each pivot column k,
//     choose the row at or below k with the largest absolute value in
//     that column (partial pivoting), swap it into place flipping the
//     accumulated sign, and eliminate entries below the pivot. If the
//     chosen pivot's magnitude is below the tolerance the matrix is
//     singular: return 0 immediately.
//   - Stage 4: determinant = sign × product of the reduced diagonal.
//
// Inputs:
//   - m: non-nil square Matrix (n×n).
//   - opts: optional numeric policy (WithPivotTolerance).
//
// Returns:
//   - float64: the determinant (exact 0 for singular inputs).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (shape named in the message).
//
// Determinism:
//   - Fixed k→p→j visitation; pivot choice by strict > comparison keeps
//     the first maximal row, so results are stable across runs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func Det(m Matrix, opts ...Option) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	// Resolve numeric policy
	o := gatherOptions(opts...)

	n := m.Rows()
	var err error

	// Small orders: direct formulas, no elimination needed.
	switch n {
	case 1:
		var v float64
		if v, err = m.At(0, 0); err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		return v, nil
	case 2:
		var a, b, c, d float64
		if a, err = m.At(0, 0); err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		if b, err = m.At(0, 1); err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		if c, err = m.At(1, 0); err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		if d, err = m.At(1, 1); err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		return a*d - b*c, nil
	}

	// Working copy: elimination never touches the caller's matrix.
	w, err := snapshot(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	var (
		k, p, r, j    int     // pivot column, pivot row, elimination row, column iterator
		sign          float64 // accumulated permutation sign
		best, cand    float64 // pivot search magnitudes
		pivot, factor float64 // pivot value and per-row elimination factor
		baseK, baseR  int     // flat row offsets
		det           float64 // running diagonal product
	)
	sign = detSignPositive

	for k = 0; k < n; k++ {
		// Partial pivoting: largest |w[p,k]| for p in [k, n).
		p = k
		best = math.Abs(w.data[k*n+k])
		for r = k + 1; r < n; r++ {
			cand = math.Abs(w.data[r*n+k])
			if cand > best {
				best, p = cand, r
			}
		}

		// Singularity gate: tiny pivot ⇒ determinant is exactly 0.
		if best < o.pivotTol {
			return 0, nil
		}

		// Swap the pivot row into place, flipping the sign per swap.
		if p != k {
			swapRows(w, p, k)
			sign *= detSignNegative
		}

		// Eliminate entries below the pivot in column k.
		baseK = k * n
		pivot = w.data[baseK+k]
		for r = k + 1; r < n; r++ {
			baseR = r * n
			factor = w.data[baseR+k] / pivot
			if factor == 0 {
				continue // nothing to eliminate in this row
			}
			for j = k; j < n; j++ {
				w.data[baseR+j] -= factor * w.data[baseK+j]
			}
		}
	}

	// Determinant = sign × product of the reduced diagonal.
	det = sign
	for k = 0; k < n; k++ {
		det *= w.data[k*n+k]
	}

	return det, nil
}
