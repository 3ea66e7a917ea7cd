// SPDX-License-Identifier: MIT

// Package matrix - comparisons between two matrices.
//
// Equal is exact and total (never errors); AllClose is tolerance-based and
// reports structural problems as errors. Both walk elements in row-major order
// and exit on the first difference.
package matrix

import "math"

const opAllClose = "AllClose"

// Equal reports whether a and b are both non-nil, have identical dimensions,
// and every pair of corresponding elements compares equal with ==.
//
// Behavior highlights:
//   - Never returns an error: nil operands and shape mismatches are "not equal".
//   - NaN compares unequal to everything, including itself.
//   - Dense×Dense uses a single flat loop; other implementations go through At.
//
// Complexity:
//   - Time O(r*c) worst case, O(1) on shape mismatch. Space O(1).
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	var av, bv float64
	var err error
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// AI-Hints:
//   - AllClose with small atol/rtol is the right tool for round-trip checks
//     like A*inv(A) ≈ I in tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo is the scalar relation behind AllClose.
func closeTo(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
