// SPDX-License-Identifier: MIT
// Package parse: sentinel error set. Parsers return these sentinels
// wrapped with the operand role name and token context; tests match via
// errors.Is. Shape violations (ragged rows, empty input) surface the
// matrix package's own ingestion sentinels.

package parse

import "errors"

var (
	// ErrNoRows signals whitespace input with zero non-blank lines.
	ErrNoRows = errors.New("parse: no matrix rows found")

	// ErrBadToken signals a token that does not parse as a finite number.
	ErrBadToken = errors.New("parse: not a finite number")

	// ErrNotArrayOfArrays signals structured input whose JSON value is
	// not an array of arrays of numbers.
	ErrNotArrayOfArrays = errors.New("parse: value must be an array of arrays of numbers")
)
