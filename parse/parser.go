// SPDX-License-Identifier: MIT
// Package parse: matrix text parsing.
//
// Strategy (fixed, deterministic):
//   - Stage 1: trim the input and pick the primary grammar by its first
//     character ('[' or '{' ⇒ structured-first, otherwise whitespace-first).
//   - Stage 2: run the primary grammar; on failure run the other one.
//   - Stage 3: if both grammars fail, report the whitespace parser's error.

package parse

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Kirill20202/matrix-multiplication/matrix"
)

// Matrix parses text into a validated *matrix.Dense. name is the operand
// role ("left", "right") and prefixes every error message.
//
// Returns:
//   - *matrix.Dense: the parsed, rectangular, finite-valued matrix.
//
// Errors:
//   - ErrNoRows / ErrBadToken / ErrNotArrayOfArrays (grammar failures),
//   - matrix.ErrRagged / matrix.ErrEmpty / matrix.ErrNaNInf (ingestion).
//
// Complexity: O(len(text)) tokenization + O(r*c) ingestion.
func Matrix(text, name string) (*matrix.Dense, error) {
	trimmed := strings.TrimSpace(text)

	// Structured-looking input: structured grammar first, whitespace as
	// fallback. Whichever succeeds wins; a double failure reports the
	// whitespace error (Stage 3 falls out naturally here).
	if looksStructured(trimmed) {
		if m, err := parseStructured(trimmed, name); err == nil {
			return m, nil
		}
		return parseWhitespace(text, name)
	}

	// Plain input: whitespace grammar first, structured as fallback.
	m, wsErr := parseWhitespace(text, name)
	if wsErr == nil {
		return m, nil
	}
	if m2, err := parseStructured(trimmed, name); err == nil {
		return m2, nil
	}

	// Both failed: the whitespace error is the one reported.
	return nil, wsErr
}

// looksStructured reports whether trimmed text starts like a JSON value
// of interest. '{' is included so malformed object input still routes
// through the structured branch before falling back.
func looksStructured(trimmed string) bool {
	return strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{")
}

// parseWhitespace implements the line-oriented grammar: split on line
// breaks, drop blank lines, split each remaining line on runs of
// whitespace, parse every token as a finite number.
//
// Errors: ErrNoRows (zero non-blank lines), ErrBadToken (non-numeric or
// non-finite token), matrix ingestion sentinels (ragged rows).
func parseWhitespace(text, name string) (*matrix.Dense, error) {
	var rows [][]float64

	// strings.Fields also swallows '\r', so CRLF input needs no special
	// handling beyond the line split.
	for _, line := range strings.Split(text, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue // blank line: ignored by the grammar
		}
		row := make([]float64, 0, len(tokens))
		for _, tok := range tokens {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: token %q: %w", name, tok, ErrBadToken)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoRows)
	}

	// Ingestion enforces rectangularity; finiteness was checked per token.
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return m, nil
}

// parseStructured implements the JSON grammar: the value must decode as
// an array of arrays of numbers. JSON itself cannot encode NaN/Inf, and
// ingestion re-checks finiteness and rectangularity regardless.
//
// Errors: ErrNotArrayOfArrays (malformed JSON or wrong shape of value),
// matrix ingestion sentinels (ragged rows, empty rows).
func parseStructured(trimmed, name string) (*matrix.Dense, error) {
	var rows [][]float64
	if err := json.Unmarshal([]byte(trimmed), &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNotArrayOfArrays)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return m, nil
}
