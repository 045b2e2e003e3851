// Package clock supplies wall-clock time in the business timezone.
package clock

import "time"

// Clock returns the current instant. Order numbers take their date from it.
type Clock interface {
	Now() time.Time
}

// System reads the machine clock and converts it to a fixed location.
type System struct {
	location *time.Location
}

func NewSystem(location *time.Location) System {
	if location == nil {
		location = time.UTC
	}
	return System{location: location}
}

func (c System) Now() time.Time {
	return time.Now().In(c.location)
}

// Fixed always returns the same instant. Used by tests.
type Fixed time.Time

func (c Fixed) Now() time.Time {
	return time.Time(c)
}
