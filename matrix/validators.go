// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return sentinel errors wrapped with shape context, so call sites
//     get human-readable messages AND errors.Is matching for free.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Shape-mismatch messages always name BOTH operand shapes ("2x3" form);
//     this is part of the public error contract, not cosmetics.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// Shape renders the dimensions of m in the canonical "RxC" form used by
// every shape-mismatch message in the package.
// Complexity: O(1).
func Shape(m Matrix) string {
	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Inputs: Two Matrix values.
// Returns: nil or ErrDimensionMismatch wrapped with both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons; one message covers rows and columns since
	// the shapes are reported in full either way.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("shapes %s and %s differ: %w", Shape(a), Shape(b), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and conformable for
// the product a × b (a.Cols == b.Rows).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (with both shapes).
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	// Inner dimensions must agree: (r×n) × (n×c).
	if a.Cols() != b.Rows() {
		return fmt.Errorf("incompatible shapes for multiplication: left is %s, right is %s: %w",
			Shape(a), Shape(b), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Inputs: non-nil Matrix value (caller must ensure).
// Errors: ErrNonSquare, with the offending shape in the message.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return fmt.Errorf("shape %s: %w", Shape(m), ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return err // already carries both shapes; no extra tag needed
	}
	return nil
}

// ValidateSquareNonNil — composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	return nil
}
