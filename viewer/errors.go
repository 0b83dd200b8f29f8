package viewer

import "errors"

// ErrEmptyCanvas is returned by Run for a canvas with no pixels, which
// cannot back a window.
var ErrEmptyCanvas = errors.New("viewer: empty canvas")
