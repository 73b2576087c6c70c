package ports

import "time"

// Clock provides the current time. The animation reads it on every frame,
// so tests swap in a fake to drive time deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
// time.Now carries a monotonic reading, so differences between two calls are
// immune to wall-clock adjustments.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
