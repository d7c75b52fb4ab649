// SPDX-License-Identifier: MIT

// Package render formats computed matrices for the presentation layer.
//
// Two textual forms are produced: a whitespace grid (one row per line,
// values separated by single spaces) and a pretty structured form (a
// bracketed array of arrays, one row per line). Every value is rounded
// to 12 significant digits before printing, which suppresses the usual
// floating-point artifacts (0.1+0.2 renders as 0.3, not 0.30000...04).
//
// The grid form round-trips: parsing it again yields the same matrix
// within 1e-9.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Kirill20202/matrix-multiplication/matrix"
)

// sigDigits is the number of significant digits kept in printed values.
// Twelve digits is enough to hide one-ulp noise from float64 arithmetic
// while keeping honest values exact.
const sigDigits = 12

// Number renders a single value rounded to sigDigits significant
// digits, %g-style (shortest form, exponent where warranted).
// Complexity: O(1).
func Number(v float64) string {
	return strconv.FormatFloat(v, 'g', sigDigits, 64)
}

// Grid renders m as a whitespace grid: rows joined by newlines, values
// by single spaces, each value rounded via Number.
//
// Errors: propagated At failures from exotic Matrix implementations
// (never from *Dense).
// Complexity: O(r*c).
func Grid(m matrix.Matrix) (string, error) {
	rows, cols := m.Rows(), m.Cols()
	var b strings.Builder
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			v, err = m.At(i, j)
			if err != nil {
				return "", fmt.Errorf("Grid: At(%d,%d): %w", i, j, err)
			}
			b.WriteString(Number(v))
		}
	}

	return b.String(), nil
}

// Pretty renders m as a bracketed array of arrays, one row per line:
//
//	[
//	  [19, 22],
//	  [43, 50]
//	]
//
// Values are rounded via Number, so Pretty stays consistent with Grid.
// Complexity: O(r*c).
func Pretty(m matrix.Matrix) (string, error) {
	rows, cols := m.Rows(), m.Cols()
	var b strings.Builder
	b.WriteString("[\n")
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		b.WriteString("  [")
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			v, err = m.At(i, j)
			if err != nil {
				return "", fmt.Errorf("Pretty: At(%d,%d): %w", i, j, err)
			}
			b.WriteString(Number(v))
		}
		b.WriteByte(']')
		if i < rows-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(']')

	return b.String(), nil
}

// Result renders the dual-format result string the presentation layer
// displays: the grid, a blank line, then the pretty structured form.
// Complexity: O(r*c).
func Result(m matrix.Matrix) (string, error) {
	grid, err := Grid(m)
	if err != nil {
		return "", err
	}
	pretty, err := Pretty(m)
	if err != nil {
		return "", err
	}

	return grid + "\n\n" + pretty, nil
}
