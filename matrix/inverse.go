// Inverse computes the inverse of a square matrix using LU decomposition
// and forward/backward substitution, following strict fail-fast patterns.
package matrix

import "fmt"

// Inverse returns the inverse of the square matrix m, or an error if m is
// not square or singular.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Decompose): A = L·U via Doolittle.
//	Stage 3 (Prepare): allocate result matrix and scratch slices.
//	Stage 4 (Execute): for each identity column eᵢ, solve L·y = eᵢ then U·x = y.
//	Stage 5 (Finalize): assemble columns into the inverse and return.
//
// The opts control the numeric policy (see WithPivotTolerance); a pivot within
// tolerance of zero surfaces as ErrSingular.
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Stage 1: Validate input shape
	if m == nil {
		return nil, fmt.Errorf("Inverse: %w", ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols() // matrix dimensions
	if rows != cols {                // enforce square matrix
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", rows, cols, ErrNonSquare)
	}

	// Stage 2: LU decomposition (pivot-tolerance policy applied inside)
	L, U, err := LU(m, opts...) // perform Doolittle LU
	if err != nil {             // fail-fast on decomposition error
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 3: Prepare result container and workspaces
	inv, err := NewDense(rows, cols) // allocate Dense(rows×cols)
	if err != nil {                  // fail-fast on allocation error
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	y := make([]float64, rows) // scratch for forward substitution
	x := make([]float64, rows) // scratch for backward substitution

	// Stage 4: Compute each column of the inverse
	var (
		col, i, k  int     // loop indices
		sum, pivot float64 // arithmetic helpers
		aVal       float64 // fetched matrix value
	)
	for col = 0; col < cols; col++ { // for each basis vector e_col
		// Forward substitution: L·y = e_col
		for i = 0; i < rows; i++ {
			sum = 0                 // reset accumulator
			for k = 0; k < i; k++ { // sum L[i][k]*y[k]
				aVal, _ = L.At(i, k) // fetch L[i][k]
				sum += aVal * y[k]   // accumulate
			}
			if i == col { // basis entry
				y[i] = 1.0 - sum // e_col[i] == 1
			} else {
				y[i] = -sum // e_col[i] == 0
			}
		}

		// Backward substitution: U·x = y
		for i = rows - 1; i >= 0; i-- {
			sum = 0                        // reset accumulator
			for k = i + 1; k < cols; k++ { // sum U[i][k]*x[k]
				aVal, _ = U.At(i, k) // fetch U[i][k]
				sum += aVal * x[k]   // accumulate
			}
			pivot, _ = U.At(i, i)       // fetch diagonal U[i][i]
			x[i] = (y[i] - sum) / pivot // solve for x[i]; LU guarantees |pivot| > tol
		}

		// Write solution x into column col of inv
		for i = 0; i < rows; i++ {
			_ = inv.Set(i, col, x[i]) // assign inv[i][col]
		}
	}

	// Stage 5: Return computed inverse
	return inv, nil
}
