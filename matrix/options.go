// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of
// Det and Rank. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// DefaultPivotTolerance is the magnitude below which a pivot candidate
// is treated as zero during Det and Rank elimination. A pivot smaller
// than this makes Det report a singular matrix (determinant 0) and
// makes Rank skip the column.
const DefaultPivotTolerance = 1e-10

// panicPivotToleranceInvalid is the message for a nonsensical tolerance
// (programmer error; user input never reaches this path).
const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite and non-negative"

// options holds the resolved numeric policy. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	pivotTol float64 // |pivot| <= pivotTol ⇒ treated as zero
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// WithPivotTolerance overrides the pivot-magnitude threshold used by
// Det and Rank. eps must be finite and non-negative; violating that is
// a programmer error and panics.
func WithPivotTolerance(eps float64) Option {
	// Validate eagerly so the panic points at the construction site.
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}
	return func(o *options) {
		o.pivotTol = eps
	}
}

// gatherOptions applies opts over the documented defaults and returns
// the resolved policy. Internal; kernels call it exactly once per call.
func gatherOptions(opts ...Option) options {
	o := options{pivotTol: DefaultPivotTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
