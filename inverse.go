// SPDX-License-Identifier: MIT

package invcache

import (
	"fmt"

	"github.com/katalvlaran/invcache/matrix"
)

// Inverse returns the inverse of the held matrix, computing it at most once
// per distinct matrix value.
//
// On a hit the cached value is returned (as a copy) and a "cache hit" DEBUG
// event is logged. On a miss the inverter runs on the held matrix with opts
// forwarded verbatim, the result is cached, and "cache miss" is logged.
//
// An inverter error (matrix.ErrSingular, matrix.ErrNonSquare, ...) is returned
// unwrapped and leaves the cache empty, so a retry after ReplaceMatrix can
// succeed. An inverter that reports success without a matrix is a failure too,
// reported as matrix.ErrNilMatrix.
//
// The lock is held across the computation: a concurrent ReplaceMatrix cannot
// slip in between reading the matrix and storing its inverse.
func (h *Holder) Inverse(opts ...matrix.Option) (matrix.Matrix, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.inv != nil {
		h.stats.Hits++
		h.entry().Debug(msgHit)

		return h.inv.Clone(), nil
	}

	h.entry().Debug(msgMiss)
	inv, err := h.invert(h.m, opts...)
	if err == nil && matrix.ValidateNotNil(inv) != nil {
		err = fmt.Errorf("invcache: inverter returned no result: %w", matrix.ErrNilMatrix)
	}
	if err != nil {
		h.stats.Failures++
		h.entry().WithError(err).Debug(msgFailed)

		return nil, err
	}

	h.inv = matrix.CloneMatrix(inv)
	h.stats.Misses++

	return inv, nil
}

// IsSameMatrix reports whether a and b are both non-nil matrices with
// identical dimensions and element-wise equal values. Every other case,
// including nil operands and shape mismatches, is "different". It never fails.
func IsSameMatrix(a, b matrix.Matrix) bool {
	return matrix.Equal(a, b)
}
