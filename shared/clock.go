package shared

import "time"

// IClock abstracts wall-clock time and single-shot timers so that
// time-driven logic can be stepped deterministically.
type IClock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) ITimer
}

// ITimer is a cancellable single-shot timer.
type ITimer interface {
	// Stop prevents the timer from firing. Returns false if it already fired or was stopped.
	Stop() bool
}

type systemClock struct{}

func NewSystemClock() IClock {
	return &systemClock{}
}

func (*systemClock) Now() time.Time {
	return time.Now()
}

func (*systemClock) AfterFunc(d time.Duration, f func()) ITimer {
	return time.AfterFunc(d, f)
}
