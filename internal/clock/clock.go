// Package clock abstracts wall-clock time so windowed queries can be tested
// against a frozen instant.
package clock

import "time"

// Clock reports the current instant in the zone calendar days are measured in
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// Real reads the system clock
type Real struct {
	Loc *time.Location
}

// New returns a system clock for loc (time.Local when nil)
func New(loc *time.Location) Real {
	if loc == nil {
		loc = time.Local
	}
	return Real{Loc: loc}
}

func (r Real) Now() time.Time { return time.Now().In(r.Location()) }

func (r Real) Location() *time.Location {
	if r.Loc == nil {
		return time.Local
	}
	return r.Loc
}

// Fixed always reports the same instant
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

func (f Fixed) Location() *time.Location { return f.T.Location() }

// StartOfDay truncates t to 00:00:00 of its calendar day in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayBounds returns [start, end) of the calendar day containing t in loc
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfDay(t, loc)
	return start, start.AddDate(0, 0, 1)
}
