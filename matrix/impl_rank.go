// SPDX-License-Identifier: MIT
// Package matrix: rank kernel.
//
// Rank computes the rank of an arbitrary (not necessarily square) matrix
// by Gaussian elimination: per column, the first row at or below the
// current elimination frontier whose magnitude exceeds the pivot
// tolerance is swapped to the frontier and used to clear the column
// below it; columns without such a row are skipped. The final frontier
// position is the count of independent pivot rows.

package matrix

import "math"

// Rank computes the rank of m (rows×cols), i.e. the number of linearly
// independent rows found by pivoted elimination.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); resolve numeric policy; snapshot m
//     into a working copy (the caller's matrix is never mutated).
//   - Stage 2: walk columns left to right while the frontier is below
//     the row count. In each column, scan rows [frontier, rows) in order
//     and take the FIRST entry with |value| > tolerance; no pivot ⇒ the
//     column is dependent, skip it. Otherwise swap the pivot row to the
//     frontier, eliminate the column below it, advance the frontier.
//
// Inputs:
//   - m: non-nil Matrix of any shape.
//   - opts: optional numeric policy (WithPivotTolerance).
//
// Returns:
//   - int: the rank, in [0, min(rows, cols)].
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Determinism:
//   - First-qualifying-row pivot choice and fixed column order make the
//     result independent of anything but the input values.
//
// Complexity:
//   - Time O(rows·cols·min(rows,cols)), Space O(rows·cols).
func Rank(m Matrix, opts ...Option) (int, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	// Resolve numeric policy
	o := gatherOptions(opts...)

	// Working copy for in-place elimination.
	w, err := snapshot(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	rows, cols := w.r, w.c
	var (
		frontier, col, r, j int     // elimination frontier and loop iterators
		pivotRow            int     // first qualifying row for the current column
		pivot, factor       float64 // pivot value and per-row elimination factor
		baseF, baseR        int     // flat row offsets
	)

	for col = 0; col < cols && frontier < rows; col++ {
		// Find the first row at or below the frontier with a usable pivot.
		pivotRow = -1
		for r = frontier; r < rows; r++ {
			if math.Abs(w.data[r*cols+col]) > o.pivotTol {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			continue // dependent column: no pivot, frontier stays put
		}

		// Swap the pivot row up to the frontier.
		swapRows(w, pivotRow, frontier)

		// Eliminate the column below the frontier.
		baseF = frontier * cols
		pivot = w.data[baseF+col]
		for r = frontier + 1; r < rows; r++ {
			baseR = r * cols
			factor = w.data[baseR+col] / pivot
			if factor == 0 {
				continue // already zero in this column
			}
			for j = col; j < cols; j++ {
				w.data[baseR+j] -= factor * w.data[baseF+j]
			}
		}

		// One more independent pivot row found.
		frontier++
	}

	return frontier, nil
}
