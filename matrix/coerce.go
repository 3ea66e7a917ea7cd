// SPDX-License-Identifier: MIT

// Package matrix - coercion of plain Go values into Dense.
//
// Purpose:
//   - Let callers hand over numeric literals ([][]float64, []int, a scalar...)
//     wherever a Matrix is expected, with one documented conversion table.
//
// Conversion table:
//   - Matrix (non-nil)                         → deep copy into *Dense
//   - [][]float64, [][]float32, [][]int, [][]int64 → r×c, rows must be rectangular
//   - []float64, []float32, []int, []int64     → n×1 column vector
//   - float64, float32, int, int64             → 1×1
//   - anything else                            → ErrNotCoercible
package matrix

import "fmt"

const ctxFromAny = "FromAny"

// FromAny converts v into a new *Dense according to the conversion table above.
//
// Implementation:
//   - Stage 1: reject nil (untyped nil or typed-nil *Dense) with ErrNilMatrix.
//   - Stage 2: type-switch into a [][]float64 literal.
//   - Stage 3: delegate to NewDenseFrom (shape + numeric policy).
//
// Errors:
//   - ErrNilMatrix, ErrNotCoercible, ErrBadShape, ErrNaNInf (wrapped with "FromAny").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The result never aliases v; later mutation of v has no effect.
func FromAny(v any, opts ...Option) (*Dense, error) {
	if v == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromAny, ErrNilMatrix)
	}

	var rows [][]float64
	switch x := v.(type) {
	case Matrix:
		if isNil(x) {
			return nil, fmt.Errorf("%s: %w", ctxFromAny, ErrNilMatrix)
		}
		rows = matrixRows(x)
	case [][]float64:
		rows = x
	case [][]float32:
		rows = convertRows(x)
	case [][]int:
		rows = convertRows(x)
	case [][]int64:
		rows = convertRows(x)
	case []float64:
		rows = columnOf(x)
	case []float32:
		rows = columnOf(x)
	case []int:
		rows = columnOf(x)
	case []int64:
		rows = columnOf(x)
	case float64:
		rows = [][]float64{{x}}
	case float32:
		rows = [][]float64{{float64(x)}}
	case int:
		rows = [][]float64{{float64(x)}}
	case int64:
		rows = [][]float64{{float64(x)}}
	default:
		return nil, fmt.Errorf("%s: %T: %w", ctxFromAny, v, ErrNotCoercible)
	}

	d, err := NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromAny, err)
	}

	return d, nil
}

// number is the set of element types FromAny accepts in slice form.
type number interface {
	~float64 | ~float32 | ~int | ~int64
}

// convertRows widens a rectangular-or-not literal to float64; shape checks
// are left to NewDenseFrom.
func convertRows[T number](in [][]T) [][]float64 {
	out := make([][]float64, len(in))
	for i, row := range in {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = float64(v)
		}
	}

	return out
}

// columnOf turns a vector into an n×1 literal.
func columnOf[T number](in []T) [][]float64 {
	out := make([][]float64, len(in))
	for i, v := range in {
		out[i] = []float64{float64(v)}
	}

	return out
}

// matrixRows reads any Matrix into a literal. Dense takes the flat fast-path.
func matrixRows(m Matrix) [][]float64 {
	if d, ok := m.(*Dense); ok {
		return d.RawRows()
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j], _ = m.At(i, j) // indices are in range by construction
		}
	}

	return out
}
