// SPDX-License-Identifier: MIT
// Package parse: scalar token detection.

package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// scalarToken matches exactly one numeric token: optional sign, digits
// with an optional decimal part (or a bare ".5" form), and an optional
// exponent. Anchored on both ends so "1 2" and "[1,2]" never match.
var scalarToken = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Scalar reports whether trimmed text is a single numeric token and, if
// so, its value. A non-match is NOT an error — callers use it to decide
// whether a right-hand operand means scalar multiplication.
//
// Accepts: "2", "-3.5", "1e-3", "  7  " (surrounding space ignored).
// Rejects: "1 2", "[1,2]", "", "2x".
//
// Complexity: O(len(text)).
func Scalar(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if !scalarToken.MatchString(trimmed) {
		return 0, false
	}

	// The token shape guarantees ParseFloat succeeds and yields a finite
	// value for any representable input; overflow to ±Inf is still
	// rejected by returning false.
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
