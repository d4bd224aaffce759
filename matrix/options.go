// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// inversion kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume `...Option`.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the non-negative magnitude below or at which a
	// pivot is treated as zero during LU/inversion. The default of exactly 0
	// rejects only true zero pivots, keeping the non-pivoting scheme
	// deterministic; raise it to reject near-singular inputs.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// PivotTolerance reports the resolved pivot tolerance.
// Complexity: O(1).
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the pivot tolerance used by LU and Inverse.
// A pivot p with |p| ≤ tol is treated as zero and reported as ErrSingular.
//
// Inputs:
//   - tol: non-negative finite magnitude.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - tol=0 (the default) rejects only exact zero pivots.
//   - A modest tol (e.g. 1e-12) guards against numerically singular inputs
//     at the cost of rejecting some ill-conditioned but invertible matrices.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.pivotTol = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts (last-writer-wins).
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for the kernels.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol: DefaultPivotTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
