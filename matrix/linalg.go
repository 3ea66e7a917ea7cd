// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels over any Matrix implementation:
// element-wise addition, scalar scaling, matrix multiplication, LU factorization
// with partial pivoting, and inversion. All kernels validate fail-fast and return
// wrapped sentinels; operands are never mutated.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with the same loop order, so results are identical.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opMul     = "Mul"
	opScale   = "Scale"
	opLU      = "LU"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a fresh Dense holding a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
		}
	}

	return res, nil
}

// Scale returns a fresh Dense holding alpha*m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// Mul computes the matrix product a×b into a fresh Dense(a.Rows × b.Cols).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate result.
//   - Stage 2: Dense fast-path in i-k-j order (row-major friendly, zero-skip on a[i,k]);
//     generic fallback in i-j-k order via At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// LUFactors is the result of LU: P*A = L*U, where P permutes rows of A.
//   - L is unit lower triangular, U is upper triangular.
//   - Perm[i] is the row of A that ended up in row i of P*A.
//   - Swaps counts row exchanges (parity gives the sign of det P).
type LUFactors struct {
	L, U  *Dense
	Perm  []int
	Swaps int
}

// Det returns det(A) = (-1)^Swaps * prod(diag(U)).
// Complexity: O(n).
func (f *LUFactors) Det() float64 {
	det := 1.0
	if f.Swaps%2 == 1 {
		det = -1.0
	}
	n := f.U.r
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det
}

// LU computes a Doolittle factorization with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); copy A into a flat n×n workspace; Perm = identity.
//   - Stage 2: for each column k pick the row p ≥ k with the largest |a[p,k]|
//     (first one wins on ties), swap rows k and p, and eliminate below the pivot
//     storing multipliers in place.
//   - Stage 3: split the workspace into unit-lower L and upper U.
//
// Behavior highlights:
//   - Deterministic: pivot choice depends only on values, ties resolve to the lowest row.
//   - A pivot with |p| <= n*DefaultPivotEpsilon*max|a_ij| is reported as
//     ErrSingular; WithPivotTolerance(tol) swaps in |p| <= tol.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (all wrapped with "LU").
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()

	work := flatCopy(m)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		best, mult float64
		rowK, rowI int
		swaps      int
		maxAbs     float64
	)
	for i = range work {
		maxAbs = math.Max(maxAbs, math.Abs(work[i]))
	}
	tol := o.pivotThreshold(n, maxAbs)

	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p, best = k, math.Abs(work[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(work[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			swapRows(work, n, k, p)
			perm[k], perm[p] = perm[p], perm[k]
			swaps++
		}

		rowK = k * n
		for i = k + 1; i < n; i++ {
			rowI = i * n
			mult = work[rowI+k] / work[rowK+k]
			work[rowI+k] = mult // L multiplier stored below the diagonal
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				work[rowI+j] -= mult * work[rowK+j]
			}
		}
	}

	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = work[i*n+j]
			case j == i:
				L.data[i*n+j] = 1.0
				U.data[i*n+j] = work[i*n+j]
			default:
				U.data[i*n+j] = work[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Swaps: swaps}, nil
}

// Inverse computes A^{-1} via LU with partial pivoting.
//
// Implementation:
//   - Stage 1: LU(m, opts...) → P*A = L*U.
//   - Stage 2: for each canonical basis column e_col solve L*y = P*e_col
//     (top-down), then U*x = y (bottom-up), and write x into column col.
//   - Stage 3: under the numeric policy, reject non-finite entries (overflow
//     from a near-zero pivot that slipped under a zero tolerance).
//
// Inputs:
//   - m: non-nil square matrix. Not mutated.
//   - opts: WithPivotTolerance, WithNoValidateNaNInf.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrNaNInf (all wrapped with "Inverse").
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - If you only need A^{-1}*b, solve with the LU factors directly instead.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	n := f.U.r

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv.validateNaNInf = o.validateNaNInf

	var (
		col, i, k int
		sum, rhs  float64
		base      int
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
		Ld, Ud    = f.L.data, f.U.data
	)
	for col = 0; col < n; col++ {
		// L*y = P*e_col; (P*e_col)[i] == 1 iff row i of P*A came from row col of A.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			base = i * n
			for k = 0; k < i; k++ {
				sum += Ld[base+k] * y[k]
			}
			rhs = 0.0
			if f.Perm[i] == col {
				rhs = 1.0
			}
			y[i] = rhs - sum
		}
		// U*x = y; pivots are non-zero after LU.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += Ud[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / Ud[base+i]
		}
		for i = 0; i < n; i++ {
			if o.validateNaNInf && (math.IsNaN(x[i]) || math.IsInf(x[i], 0)) {
				return nil, matrixErrorf(opInverse, denseErrorf(ctxSet, i, col, ErrNaNInf))
			}
			if x[i] == 0 {
				x[i] = 0 // normalize -0
			}
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// flatCopy returns a row-major copy of m's elements.
func flatCopy(m Matrix) []float64 {
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(out, d.data)

		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i*c+j], _ = m.At(i, j) // in range by construction
		}
	}

	return out
}

// swapRows exchanges rows a and b of an n-column flat buffer in place.
func swapRows(buf []float64, n, a, b int) {
	ra, rb := a*n, b*n
	for j := 0; j < n; j++ {
		buf[ra+j], buf[rb+j] = buf[rb+j], buf[ra+j]
	}
}
