package shop

import "time"

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by the real system time.
func SystemClock() Clock {
	return systemClock{}
}
