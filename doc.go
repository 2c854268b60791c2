// Package linalg is a small, exact-arithmetic linear-algebra toolkit:
// coordinate vectors, 2D line / 3D plane equations, and Gaussian
// elimination over systems of hyperplane equations.
//
// 🚀 What is linalg?
//
//	An in-memory, single-caller library built on arbitrary-precision
//	decimals (shopspring/decimal) instead of native floats, so chained
//	row operations do not compound binary rounding error:
//		• vector/     — immutable decimal vectors: arithmetic, dot & cross
//		  products, angles, projections
//		• hyperplane/ — normal-vector/constant-term equations with
//		  basepoints, geometric equality and pretty rendering
//		• linsys/     — linear systems: row operations, triangular form,
//		  reduced row-echelon form (RREF), and solution extraction
//
// ✨ Why choose linalg?
//
//   - Deterministic – fixed 1e-10 near-zero tolerance, no hidden state
//   - Safe – reduction algorithms operate on a fresh copy; the caller's
//     system is never mutated
//   - Honest errors – expected conditions ("no pivot in this row",
//     "infinitely many solutions") are sentinels matched via errors.Is
//
// Quick ASCII example:
//
//	x +  y +  z = 1        x = 23/9
//	x −  y +  z = 2   ⇒    y =  7/9
//	x + 2y − 5z = 3        z =  2/9
//
// Dive into each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/linalg/linsys
package linalg
