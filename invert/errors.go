package invert

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when inversion is requested on the empty state
// (nil or 0x0 matrix). Storing an empty matrix in a cell is legal;
// inverting one is not.
var ErrEmpty = errors.New("invert: empty matrix")

// ShapeError reports a non-square input. Inversion is the first layer that
// validates shape; the cell stores any matrix unchecked.
type ShapeError struct {
	Rows, Cols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invert: %dx%d matrix is not square", e.Rows, e.Cols)
}

// SingularError reports a square matrix that is exactly or numerically
// singular, or one rejected by a WithMaxCond limit.
type SingularError struct {
	Cond float64 // condition estimate; +Inf when exactly singular
	Err  error   // underlying primitive error, nil for a MaxCond rejection
}

func (e *SingularError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invert: singular matrix (cond=%g): %v", e.Cond, e.Err)
	}
	return fmt.Sprintf("invert: singular matrix (cond=%g)", e.Cond)
}

func (e *SingularError) Unwrap() error { return e.Err }
