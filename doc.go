// Package matcalc is a self-contained dense-matrix calculator: a
// flexible matrix-text parser plus synchronous numeric linear-algebra
// routines, with a thin CLI shell on top.
//
// 🚀 What is in the box?
//
//	A small, deterministic library that brings together:
//		• Flexible parsing: JSON array-of-arrays or whitespace rows, with
//		  scalar-token detection for the multiply shortcut
//		• Kernels: multiply (zero-skip triple loop), add, subtract,
//		  scalar scaling, transpose
//		• Determinant: LU decomposition with partial pivoting and a
//		  singularity gate at the pivot tolerance
//		• Rank: Gaussian elimination with a first-qualifying-pivot rule
//		• Formatting: whitespace grid + pretty structured form, values
//		  rounded to 12 significant digits
//
// Everything is organized under four subpackages plus a command:
//
//	matrix/   — Dense storage, validators, sentinel errors, kernels
//	parse/    — text → matrix, scalar detection
//	render/   — grid/pretty/dual-format output
//	calc/     — operation(leftText, rightText) → resultText facade
//	cmd/matrixcalc — cobra CLI with a built-in demo
//
// Quick example:
//
//	out, err := calc.Eval(calc.OpMultiply, "[[1,2],[3,4]]", "[[5,6],[7,8]]")
//	// out begins with:
//	// 19 22
//	// 43 50
//
// All failures are descriptive errors built on errors.Is-matchable
// sentinels; nothing in the library panics on user input.
package matcalc
