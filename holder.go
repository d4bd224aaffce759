// Holder accessors: controlled mutation of the matrix value and the cached
// inverse slot. The compute-or-fetch protocol lives in inverse.go.
package matcache

import (
	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// placeholderMatrix builds the 1×1 zero matrix used when New receives nil.
// The placeholder is accepted without validation; it fails at inversion time
// (singular), matching the deferred-validation contract.
func placeholderMatrix() matrix.Matrix {
	m, _ := matrix.NewDense(1, 1) // 1×1 never violates shape validation

	return m
}

// New constructs a Holder wrapping initial with an empty inverse cache.
// Stage 1 (Prepare): substitute the 1×1 placeholder when initial is nil.
// Stage 2 (Assemble): wire default inverter and logger.
// Stage 3 (Finalize): apply construction options (last-writer-wins).
//
// No shape validation is performed here: an empty or non-square matrix is
// accepted and errors surface later, at inversion time.
// Complexity: O(k) for k=len(opts).
func New(initial matrix.Matrix, opts ...HolderOption) *Holder {
	// Substitute placeholder for absent initial value
	if initial == nil {
		initial = placeholderMatrix()
	}

	// Assemble holder with defaults
	h := &Holder{
		x:      initial,
		inv:    nil,            // cache starts absent
		invert: matrix.Inverse, // default inversion primitive
		logger: log.Log,        // default side channel (stderr)
	}

	// Apply construction options
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// SetMatrix replaces the held matrix and unconditionally discards the cached
// inverse in the same operation. Any previously cached inverse becomes
// unreachable. No error conditions.
// Complexity: O(1).
func (h *Holder) SetMatrix(m matrix.Matrix) {
	h.x = m     // replace current value
	h.inv = nil // invalidate cache atomically with the replacement
}

// Matrix returns the current matrix value. Pure read, no side effects.
// Complexity: O(1).
func (h *Holder) Matrix() matrix.Matrix {
	return h.x // return stored value
}

// SetCachedInverse stores inv into the cache slot unconditionally, without
// verifying it is actually the inverse of the current matrix. The Inverse
// accessor is the sole trusted writer; see the Holder doc for the contract.
// Complexity: O(1).
func (h *Holder) SetCachedInverse(inv matrix.Matrix) {
	h.inv = inv // trusted write, no verification
}

// CachedInverse returns the cached inverse and whether it is present.
// Absent (nil, false) means never computed since the last SetMatrix.
// Complexity: O(1).
func (h *Holder) CachedInverse() (matrix.Matrix, bool) {
	if h.inv == nil {
		return nil, false // cache empty
	}

	return h.inv, true
}
