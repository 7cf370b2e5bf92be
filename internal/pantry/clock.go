package pantry

import "time"

// Clock supplies the reference "now" for creation stamps and state
// transitions. Injecting it keeps every date-based behavior
// deterministic under test; production code uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
//
// Thread-safety: stateless, safe for concurrent use.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
