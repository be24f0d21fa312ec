// Package clock stamps runs with wall-clock time
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/chunin-dm/internal/pkg/clock Clock

// Clock provides the current time. Run reports stamp their start and end
// with it; nothing in check resolution reads the time.
type Clock interface {
	Now() time.Time
}

// System reads the system clock
type System struct{}

// Now returns the current time
func (System) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return System{}
}

// Since is the time elapsed on c since start
func Since(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}
