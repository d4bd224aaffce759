// SPDX-License-Identifier: MIT
// Package matcache: sentinel error set.
// Shape and singularity failures are NOT redefined here; they surface from the
// matrix subpackage (matrix.ErrNonSquare, matrix.ErrSingular, ...) and callers
// match them via errors.Is.

package matcache

import "errors"

// ErrNilHolder indicates that a nil *Holder was passed to Inverse.
var ErrNilHolder = errors.New("matcache: nil holder")
