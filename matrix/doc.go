// Package matrix is the numeric substrate of invcache: dense storage and the
// linear-algebra routines needed to compute, compare and verify inverses.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - FromAny, which coerces plain Go numeric values ([][]float64, []int,
//     scalars, any Matrix) into a Dense.
//   - LU with partial pivoting and Inverse built on it; Inverse satisfies the
//     Inverter function type that caching layers accept.
//   - Add, Scale, Mul for composing test inputs and checking A*inv(A) ≈ I.
//   - Equal (exact, total) and AllClose (tolerance-based) comparisons.
//
// All errors are package sentinels (ErrSingular, ErrNonSquare, ...) wrapped
// with an operation tag; match them with errors.Is.
//
//	a, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 2}})
//	inv, err := matrix.Inverse(a)                       // [[0.5 0] [0 0.5]]
//	_, err = matrix.Inverse(a, matrix.WithPivotTolerance(1e-12))
package matrix
