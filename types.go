// SPDX-License-Identifier: MIT

// Package matcache: domain types.
// This file intentionally contains ONLY the Holder state and the inverter hook
// signature; errors and options live in dedicated files (errors.go,
// options.go) per the global conventions.
package matcache

import (
	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// InverterFunc computes the inverse of m, honoring the numeric-policy opts.
// The default is matrix.Inverse; tests inject counting hooks here.
type InverterFunc func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// Holder owns one mutable matrix value and its optional cached inverse.
//
// Invariants (maintained by construction, never verified):
//   - inv == nil means "no cached inverse".
//   - SetMatrix always clears inv in the same operation, so a stale inverse
//     is never observable.
//   - inv, when non-nil, equals the inverse of the current x. The only
//     trusted writer is the Inverse accessor; calling SetCachedInverse
//     directly with an unrelated matrix desynchronizes the cache. That is an
//     accepted contract risk, not guarded against.
//
// Holder performs no locking; see the package doc for the concurrency model.
type Holder struct {
	x   matrix.Matrix // current matrix value
	inv matrix.Matrix // cached inverse; nil when absent

	invert InverterFunc  // inversion primitive; default matrix.Inverse
	logger log.Interface // carries the cache-hit notice; default log.Log
}
