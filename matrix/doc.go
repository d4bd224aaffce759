// Package matrix provides the dense linear-algebra substrate for matcache.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) over float64 values.
//   - Dense, a row-major flat-slice implementation with O(1) element access.
//   - Constructors for zeroed, identity and row-literal matrices.
//   - LU decomposition (Doolittle) and LU-based inversion with a configurable
//     pivot-tolerance policy.
//   - Mul and AllClose helpers for composing and checking results.
//
// All user-triggered failures are reported through package-level sentinel
// errors (ErrNonSquare, ErrSingular, ...) matched via errors.Is; methods never
// panic on bad input. Panics are reserved for nonsensical option-constructor
// arguments (programmer error).
//
// The package is deliberately small: it carries exactly the operations the
// caching layer and its tests exercise, nothing speculative.
package matrix
