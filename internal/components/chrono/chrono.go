package chrono

import "time"

// API is the clock every component that stamps times should use.
type API interface {
	Now() time.Time
	Location() *time.Location
}

type StandardImpl struct {
	location *time.Location
}

// NewStandardImpl returns a clock in the given location, or in time.Local
// when location is nil.
func NewStandardImpl(location *time.Location) StandardImpl {
	if location == nil {
		location = time.Local
	}
	return StandardImpl{location: location}
}

func (s StandardImpl) Now() time.Time {
	return time.Now().In(s.location)
}

func (s StandardImpl) Location() *time.Location {
	return s.location
}

// FixedImpl always returns the same instant, advanced only by Advance.
type FixedImpl struct {
	now *time.Time
}

func NewFixedImpl(now time.Time) FixedImpl {
	return FixedImpl{now: &now}
}

func (f FixedImpl) Now() time.Time {
	return *f.now
}

func (f FixedImpl) Location() *time.Location {
	return f.now.Location()
}

func (f FixedImpl) Advance(d time.Duration) {
	*f.now = f.now.Add(d)
}
