// SPDX-License-Identifier: MIT

// Package matrix provides dense linear-algebra primitives for the
// calculator: a row-major Dense storage type, strict fail-fast
// validators, and deterministic kernels for element-wise arithmetic,
// matrix multiplication, transpose, determinant and rank.
//
// Design rules (uniform across the package):
//   - Public operations accept the Matrix interface and return fresh
//     *Dense results; operands are never mutated.
//   - Every kernel validates through the central validators and reports
//     failures as package sentinels (errors.Is-matchable), wrapped with
//     an operation tag at the facade.
//   - Loop orders are fixed, so identical inputs always produce
//     identical results.
//   - Numeric policy is explicit: matrices admit only finite values at
//     ingestion, and the pivot tolerance for Det/Rank is a documented,
//     overridable constant (see options.go).
//
// The package is self-contained and synchronous: no goroutines, no
// shared state, no persistence. Matrices live for a single operation.
package matrix
