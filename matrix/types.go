// SPDX-License-Identifier: MIT

// Package matrix: public types shared by storage, kernels and callers.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Inverter computes the inverse of a square matrix. Options are
// implementation-defined tuning knobs (pivot tolerance, numeric policy).
//
// Inverse is the package's own Inverter; callers that memoize inverses accept
// any function of this shape so the solver can be swapped or instrumented.
type Inverter func(m Matrix, opts ...Option) (Matrix, error)

// Compile-time check: Inverse satisfies Inverter.
var _ Inverter = Inverse
