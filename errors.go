// SPDX-License-Identifier: MIT

package invcache

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned by New when the initial value is nil or cannot
// be coerced into matrix form. No Holder is produced. The coercion cause (a
// matrix sentinel such as matrix.ErrNotCoercible or matrix.ErrBadShape) is
// wrapped alongside it, so both match with errors.Is.
var ErrInvalidInput = errors.New("invcache: invalid input")

// CoercionWarning describes a successful but lossy-in-intent construction:
// the initial value was not a matrix.Matrix and had to be converted.
// It is never returned; New logs it at WARN level and carries on.
type CoercionWarning struct {
	From       string // Go type of the original value, e.g. "[][]int"
	Rows, Cols int    // shape of the resulting matrix
}

// Error implements error so the warning can travel through log.WithError.
func (w CoercionWarning) Error() string {
	return fmt.Sprintf("invcache: coerced %s to %dx%d matrix", w.From, w.Rows, w.Cols)
}
