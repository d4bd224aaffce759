// Inverse is the compute-or-fetch accessor: the single entry point consumers
// use to obtain the held matrix's inverse with memoization.
package matcache

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// noticeCacheHit is the human-readable diagnostic emitted on every cache hit.
// It is informational (observability/debugging), never an error.
const noticeCacheHit = "using cached inverse"

// Inverse returns the inverse of h's current matrix, computing and storing it
// on first use and returning the stored value on subsequent calls.
// Blueprint:
//
//	Stage 1 (Validate): nil-check the holder.
//	Stage 2 (Fetch): on a cache hit, emit the diagnostic notice and return the
//	  stored inverse immediately; opts are silently ignored on this path.
//	Stage 3 (Compute): on a miss, invert the current matrix via the holder's
//	  inversion primitive, forwarding opts verbatim.
//	Stage 4 (Store): populate the cache slot and return the fresh inverse.
//
// Error conditions: inversion fails when the matrix is not square or is
// singular (matrix.ErrNonSquare, matrix.ErrSingular); the error propagates to
// the caller and the cache slot stays empty, so the next call retries rather
// than caching a failure.
//
// Because opts only reach the inversion primitive on the compute path,
// supplying different options after a hit has no effect on the returned
// value. This is an intentional (if surprising) property of the design.
// Complexity: O(1) on a hit; O(n³) on a miss, n = h.Matrix().Rows().
func Inverse(h *Holder, opts ...matrix.Option) (matrix.Matrix, error) {
	// Stage 1: Validate holder
	if h == nil {
		return nil, fmt.Errorf("Inverse: %w", ErrNilHolder)
	}

	// Stage 2: Fetch from cache when present
	if inv, ok := h.CachedInverse(); ok {
		h.logger.Info(noticeCacheHit) // advisory side channel, not the return value

		return inv, nil // no recomputation, no inversion call
	}

	// Stage 3: Compute via the inversion primitive, options forwarded verbatim
	inv, err := h.invert(h.Matrix(), opts...)
	if err != nil {
		// Propagate uncaught; cache stays empty so the next call retries.
		return nil, err
	}

	// Stage 4: Store and return the fresh inverse
	h.SetCachedInverse(inv)

	return inv, nil
}
