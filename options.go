// SPDX-License-Identifier: MIT

// Package matcache: functional configuration for Holder construction.
// This file defines:
//   - HolderOption (functional options applied by New),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matcache

import "github.com/apex/log"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicInverterNil = "matcache: WithInverter: fn must be non-nil"
	panicLoggerNil   = "matcache: WithLogger: l must be non-nil"
)

// ---------- Public option type (functional) ----------

// HolderOption mutates a Holder during construction. Safe to apply repeatedly
// (last-writer-wins). Constructors MUST panic only on nonsensical values.
type HolderOption func(*Holder)

// ---------- Constructors (WithX) ----------

// WithInverter replaces the inversion primitive used on the compute path.
//
// Inputs:
//   - fn: non-nil InverterFunc.
//
// Errors:
//   - Panics with a stable message when fn is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The hook sees exactly the options forwarded to Inverse on a cache miss;
//     it is never consulted on a cache hit.
//   - Intended for call-count instrumentation in tests and for swapping in
//     alternative numeric kernels.
func WithInverter(fn InverterFunc) HolderOption {
	if fn == nil {
		panic(panicInverterNil)
	}

	// Assign validated hook
	return func(h *Holder) { h.invert = fn }
}

// WithLogger replaces the logger that carries the cache-hit notice.
//
// Inputs:
//   - l: non-nil apex log.Interface.
//
// Errors:
//   - Panics with a stable message when l is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The default is log.Log (stderr). Tests inject a memory-handler logger
//     to assert the notice.
func WithLogger(l log.Interface) HolderOption {
	if l == nil {
		panic(panicLoggerNil)
	}

	// Assign validated logger
	return func(h *Holder) { h.logger = l }
}
