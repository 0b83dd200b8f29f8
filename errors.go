package gosieray

import "errors"

// ErrInvalidOperation is returned when an operation is applied to a tuple
// it is not defined for, such as a cross product involving a point.
var ErrInvalidOperation = errors.New("gosieray: invalid operation")
