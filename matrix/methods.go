// SPDX-License-Identifier: MIT
// Package matrix: composition and comparison helpers over the Matrix surface.
package matrix

import (
	"fmt"
	"math"
)

// operation tags used when wrapping sentinel errors with context.
const (
	opMul      = "Mul"
	opAllClose = "AllClose"
)

// matrixErrorf wraps an underlying sentinel with the operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): triple loop, with fast-path for *Dense.
// Stage 4 (Finalize): return result.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0.0
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				if av == 0 {
					continue // skip zero for performance
				}
				bv, _ = b.At(k, j)
				current += av * bv // accumulate product
			}
			_ = res.Set(i, j, current) // safe: within bounds
		}
	}

	// Stage 4: Return result
	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	// Stage 1: Validate inputs
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol) // normalize tolerances

	// Stage 2: Element-wise scan
	var (
		i, j   int // loop iterators
		av, bv float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			if av == bv {
				continue // covers ±Inf equality; NaN falls through
			}
			if math.IsNaN(av) || math.IsNaN(bv) {
				return false, nil // NaN never compares close
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // first violation wins
			}
		}
	}

	// Stage 3: All elements within tolerance
	return true, nil
}
