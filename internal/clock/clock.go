// Package clock abstracts "what time is it" so the today-only sale
// eligibility rule can be tested with a fixed date instead of the
// wall clock.
package clock

import "time"

// Clock supplies the current time.  Production code uses System();
// tests inject Fixed(t).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }
