package focus

import "time"

// Clock abstracts time for the controller so session expiry can be driven
// deterministically in tests instead of by real wall-clock waits.
type Clock interface {
	Now() time.Time

	// AfterFunc schedules fn to run once after d and returns a handle that
	// can cancel it. A fired or stopped timer never runs fn again.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable one-shot trigger.
type Timer interface {
	// Stop cancels the timer, reporting whether it was still pending.
	Stop() bool
}

// realClock backs the controller with the time package.
type realClock struct{}

// RealClock returns a Clock backed by the system clock.
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
