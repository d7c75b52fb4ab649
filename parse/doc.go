// SPDX-License-Identifier: MIT

// Package parse turns raw calculator input into validated matrices.
//
// Two grammars are accepted and tried in an order driven by the input's
// first character:
//   - structured: a JSON array of arrays of numbers, e.g. [[1,2],[3,4]];
//   - whitespace: one matrix row per line, values separated by runs of
//     whitespace, blank lines ignored.
//
// Text that looks structured (leading '[' or '{') tries the structured
// grammar first and falls back to whitespace; anything else tries
// whitespace first and structured second. When both grammars fail, the
// whitespace parser's error is the one reported — it is the friendlier
// of the two for hand-typed input.
//
// A separate helper recognizes a single scalar token ("2", "-3.5",
// "1e-3"); a non-match is a normal outcome, not an error, because the
// caller uses it to decide between matrix and scalar multiplication.
//
// All failures carry the caller-supplied role name ("left", "right") so
// error text points at the offending operand.
package parse
