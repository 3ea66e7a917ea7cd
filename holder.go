// SPDX-License-Identifier: MIT

package invcache

import (
	"fmt"
	"sync"

	"github.com/apex/log"

	"github.com/katalvlaran/invcache/matrix"
)

// Trace messages. Tests and log pipelines match on these.
const (
	msgHit         = "cache hit"
	msgMiss        = "cache miss"
	msgFailed      = "inverse failed"
	msgInvalidated = "cache invalidated"
	msgUnchanged   = "matrix unchanged"
	msgCoerced     = "initial value coerced to matrix"
)

// Stats counts what Inverse and ReplaceMatrix did over the holder's lifetime.
type Stats struct {
	Hits          uint64 // Inverse served from cache
	Misses        uint64 // Inverse computed and stored a new value
	Failures      uint64 // Inverse computation returned an error
	Invalidations uint64 // ReplaceMatrix dropped a populated cache
}

// Holder is a single-entry cache bound to one mutable matrix value.
//
// It holds the matrix and, once computed, its inverse. The inverse is dropped
// whenever ReplaceMatrix installs a matrix that differs from the current one,
// so a populated cache always belongs to the matrix it was computed from.
//
// Matrices are cloned on the way in and on the way out: mutating a *Dense you
// passed in, or one you got back, never reaches the held state.
//
// The mutex guards (m, inv) as one unit. The zero value is not usable; call New.
type Holder struct {
	mu    sync.Mutex
	m     matrix.Matrix // nil only after ReplaceMatrix(nil)
	inv   matrix.Matrix // nil == cache empty
	stats Stats

	invert matrix.Inverter
	log    log.Interface
}

// New builds a Holder around initial with an empty cache.
//
// A non-nil matrix.Matrix is used as-is (copied). Any other value goes through
// matrix.FromAny; on success a CoercionWarning is logged at WARN level.
//
// Errors:
//   - ErrInvalidInput when initial is nil (including a typed-nil matrix) or has
//     no matrix form; the coercion cause is wrapped too.
func New(initial any, opts ...Option) (*Holder, error) {
	o := gatherOptions(opts...)
	h := &Holder{
		invert: o.inverter,
		log:    o.logger,
	}

	switch v := initial.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil initial value", ErrInvalidInput)
	case matrix.Matrix:
		if err := matrix.ValidateNotNil(v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		h.m = v.Clone()
	default:
		d, err := matrix.FromAny(initial)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		w := CoercionWarning{From: fmt.Sprintf("%T", initial), Rows: d.Rows(), Cols: d.Cols()}
		h.log.WithError(w).Warn(msgCoerced)
		h.m = d
	}

	return h, nil
}

// ReplaceMatrix installs m as the held matrix.
//
// If m is the same as the current matrix (IsSameMatrix) nothing changes and a
// populated cache survives. Otherwise m is stored and the cache is emptied.
// A nil m is always "different"; it is stored and a later Inverse reports
// matrix.ErrNilMatrix.
func (h *Holder) ReplaceMatrix(m matrix.Matrix) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if IsSameMatrix(h.m, m) {
		h.entry().Debug(msgUnchanged)
		return
	}

	h.m = matrix.CloneMatrix(m)
	if h.inv != nil {
		h.inv = nil
		h.stats.Invalidations++
		h.entry().Debug(msgInvalidated)
	}
}

// Matrix returns a copy of the held matrix. No side effects.
func (h *Holder) Matrix() matrix.Matrix {
	h.mu.Lock()
	defer h.mu.Unlock()

	return matrix.CloneMatrix(h.m)
}

// SetCachedInverse overwrites the cached inverse with a copy of inv.
// The value is not checked against the held matrix; passing nil empties the cache.
func (h *Holder) SetCachedInverse(inv matrix.Matrix) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.inv = matrix.CloneMatrix(inv)
}

// CachedInverse returns a copy of the cached inverse and true, or (nil, false)
// when the cache is empty. It never computes.
func (h *Holder) CachedInverse() (matrix.Matrix, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.inv == nil {
		return nil, false
	}

	return h.inv.Clone(), true
}

// Stats returns a snapshot of the holder's counters.
func (h *Holder) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.stats
}

// entry decorates the logger with the held matrix shape. Caller holds h.mu.
func (h *Holder) entry() *log.Entry {
	rows, cols := 0, 0
	if h.m != nil {
		rows, cols = h.m.Rows(), h.m.Cols()
	}

	return h.log.WithFields(log.Fields{"rows": rows, "cols": cols})
}
