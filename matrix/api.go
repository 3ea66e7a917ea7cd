// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
//
// AI-Hints: Use as the reference value in A*inv(A) ≈ I checks.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires a square, non-nil m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// CloneMatrix returns a deep copy of m, or nil when m is nil.
// Thin wrapper over Matrix.Clone that tolerates nil (including typed-nil *Dense).
func CloneMatrix(m Matrix) Matrix {
	if isNil(m) {
		return nil
	}

	return m.Clone()
}
