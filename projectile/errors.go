package projectile

import "errors"

// ErrNoLanding is returned by Run when the projectile is still airborne
// after the configured number of ticks.
var ErrNoLanding = errors.New("projectile: no landing within tick limit")
