// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves user options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotEpsilon is the relative factor of the default singularity
	// threshold: without WithPivotTolerance, LU/Inverse reject a pivot p with
	// |p| <= n * DefaultPivotEpsilon * max|a_ij|. Machine epsilon for float64.
	DefaultPivotEpsilon = 0x1p-52

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion,
	// Set, and kernel outputs.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotTol       float64 // >= 0; meaningful only when pivotTolSet
	pivotTolSet    bool    // false: scale-relative threshold (DefaultPivotEpsilon)
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithPivotTolerance replaces the scale-relative default with an absolute
// singularity threshold for LU and Inverse: a pivot p with |p| <= tol is
// rejected with ErrSingular. WithPivotTolerance(0) rejects only exact zeros.
//
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - The default already rejects inputs whose elimination leaves only
//     rounding noise in a pivot, e.g. [[1,2,3],[4,5,6],[7,8,9]]. A larger tol
//     also rejects ill-conditioned inputs.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol, o.pivotTolSet = tol, true }
}

// WithValidateNaNInf enables rejection of NaN/±Inf on ingestion and in kernel outputs.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/±Inf rejection. Use only for controlled
// ingestion where non-finite values are meaningful.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts over the defaults and returns the effective configuration.
// Useful for callers that want to inspect what a set of options amounts to.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance reports the absolute pivot tolerance and true, or (0, false)
// when the scale-relative default is in effect.
func (o Options) PivotTolerance() (float64, bool) { return o.pivotTol, o.pivotTolSet }

// pivotThreshold resolves the singularity threshold for an n×n input whose
// largest element magnitude is maxAbs.
func (o Options) pivotThreshold(n int, maxAbs float64) float64 {
	if o.pivotTolSet {
		return o.pivotTol
	}

	return float64(n) * DefaultPivotEpsilon * maxAbs
}

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order over the defaults.
// Nil options are skipped so callers can forward optional slices verbatim.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
