// SPDX-License-Identifier: MIT

// Package calc is the string-in/string-out operation facade between the
// presentation layer and the numeric core: each call parses two text
// operands, runs one operation, and renders the result. The caller owns
// display concerns (the "Error: " prefix, input fields, demo buttons);
// this package returns plain Go errors.
//
// One deliberate asymmetry, kept as current behavior: multiply treats a
// single-token right operand as a scalar multiplier, while add and
// subtract do not — a scalar right operand there fails shape validation
// like any other 1×1 matrix would.
package calc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Kirill20202/matrix-multiplication/matrix"
	"github.com/Kirill20202/matrix-multiplication/parse"
	"github.com/Kirill20202/matrix-multiplication/render"
)

// Op names a calculator operation. The string values double as stable
// identifiers for CLI subcommands and error messages.
type Op string

// Supported operations.
const (
	OpMultiply    Op = "multiply"    // A × B, or A · s for a scalar right operand
	OpAdd         Op = "add"         // A + B, equal shapes
	OpSubtract    Op = "subtract"    // A − B, equal shapes
	OpDeterminant Op = "determinant" // det(A), square A; right operand ignored
	OpRank        Op = "rank"        // rank(A); right operand ignored
	OpTranspose   Op = "transpose"   // Aᵀ; right operand ignored
)

// ErrUnknownOp signals an operation name outside the supported set.
var ErrUnknownOp = errors.New("calc: unknown operation")

// Operand role names used in parse errors. Matching the original
// calculator's wording keeps messages familiar.
const (
	roleLeft  = "left"
	roleRight = "right"
)

// Demo inputs: the built-in demonstration pair (2×3 times 3×2).
const (
	DemoLeft  = "[[1,2,3],[4,5,6]]"
	DemoRight = "[[7,8],[9,10],[11,12]]"
)

// Eval parses the operands, applies op, and renders the outcome.
//
// Rendering per operation:
//   - multiply/add/subtract/transpose → dual-format matrix string
//     (whitespace grid, blank line, pretty structured form);
//   - determinant → a single rounded number;
//   - rank → a base-10 integer.
//
// Unary operations (determinant, rank, transpose) ignore right.
//
// Errors:
//   - parse sentinels wrapped with the operand role,
//   - matrix shape sentinels (both shapes named in the message),
//   - ErrUnknownOp for an unrecognized op.
func Eval(op Op, left, right string) (string, error) {
	switch op {
	case OpMultiply:
		return evalMultiply(left, right)
	case OpAdd, OpSubtract:
		return evalElementwise(op, left, right)
	case OpDeterminant:
		a, err := parse.Matrix(left, roleLeft)
		if err != nil {
			return "", err
		}
		d, err := matrix.Det(a)
		if err != nil {
			return "", err
		}
		return render.Number(d), nil
	case OpRank:
		a, err := parse.Matrix(left, roleLeft)
		if err != nil {
			return "", err
		}
		r, err := matrix.Rank(a)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(r), nil
	case OpTranspose:
		a, err := parse.Matrix(left, roleLeft)
		if err != nil {
			return "", err
		}
		t, err := matrix.Transpose(a)
		if err != nil {
			return "", err
		}
		return render.Result(t)
	default:
		return "", fmt.Errorf("%q: %w", string(op), ErrUnknownOp)
	}
}

// evalMultiply handles the scalar special case before falling back to
// the matrix product: a right operand that is exactly one numeric token
// means elementwise scaling, not a 1×1 matrix.
func evalMultiply(left, right string) (string, error) {
	a, err := parse.Matrix(left, roleLeft)
	if err != nil {
		return "", err
	}

	// Scalar right operand ⇒ A · s.
	if s, ok := parse.Scalar(right); ok {
		scaled, err := matrix.Scale(a, s)
		if err != nil {
			return "", err
		}
		return render.Result(scaled)
	}

	// Matrix right operand ⇒ A × B.
	b, err := parse.Matrix(right, roleRight)
	if err != nil {
		return "", err
	}
	prod, err := matrix.Mul(a, b)
	if err != nil {
		return "", err
	}

	return render.Result(prod)
}

// evalElementwise runs add or subtract. No scalar special case here —
// see the package comment.
func evalElementwise(op Op, left, right string) (string, error) {
	a, err := parse.Matrix(left, roleLeft)
	if err != nil {
		return "", err
	}
	b, err := parse.Matrix(right, roleRight)
	if err != nil {
		return "", err
	}

	var res matrix.Matrix
	if op == OpAdd {
		res, err = matrix.Add(a, b)
	} else {
		res, err = matrix.Sub(a, b)
	}
	if err != nil {
		return "", err
	}

	return render.Result(res)
}

// Demo evaluates the built-in demonstration: DemoLeft × DemoRight.
// The result grid is [[58,64],[139,154]].
func Demo() (string, error) {
	return Eval(OpMultiply, DemoLeft, DemoRight)
}
