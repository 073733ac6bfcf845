package domain

import (
	"time"
)

// DateLayout the yyyy-mm-dd layout used by the remote API.
const DateLayout = "2006-01-02"

// MinDate the first date with exchange rates published by the remote API.
var MinDate = ValidDate{t: time.Date(1999, time.January, 4, 0, 0, 0, 0, time.UTC)}

// Clock provides the current time. Today's date is the upper bound of a ValidDate.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock a Clock always returning t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// ValidDate a calendar date within [MinDate, MaxDate].
//
// Dates are held at midnight UTC, so ValidDate values are comparable with == and usable as map keys.
// The zero value is not a valid date; request types treat it as MinDate.
type ValidDate struct {
	t time.Time
}

// MaxDate today's date according to clock, in UTC. Evaluated on every call.
func MaxDate(clock Clock) ValidDate {
	return ValidDate{t: truncate(clock.Now().UTC())}
}

// NewValidDate validates the calendar date of t (in t's location) against [MinDate, MaxDate(clock)].
func NewValidDate(t time.Time, clock Clock) (ValidDate, error) {
	d := truncate(t)
	if d.Before(MinDate.t) || d.After(MaxDate(clock).t) {
		return ValidDate{}, &InvalidDateError{Input: d.Format(DateLayout)}
	}
	return ValidDate{t: d}, nil
}

// ParseDate parses a yyyy-mm-dd date and validates it against [MinDate, MaxDate(clock)].
func ParseDate(s string, clock Clock) (ValidDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return ValidDate{}, &InvalidDateError{Input: s}
	}
	return NewValidDate(t, clock)
}

// MustParseDate is like ParseDate with the SystemClock but panics on invalid dates.
// Intended for constants and tests.
func MustParseDate(s string) ValidDate {
	d, err := ParseDate(s, SystemClock)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate checks d against [MinDate, MaxDate(clock)]. Only needed for dates not
// built by NewValidDate or ParseDate, e.g. zero or decoded dates.
func (d ValidDate) Validate(clock Clock) error {
	if d.t.Before(MinDate.t) || d.t.After(MaxDate(clock).t) {
		return &InvalidDateError{Input: d.String()}
	}
	return nil
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Time the date at midnight UTC.
func (d ValidDate) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero value.
func (d ValidDate) IsZero() bool {
	return d.t.IsZero()
}

func (d ValidDate) Before(other ValidDate) bool {
	return d.t.Before(other.t)
}

func (d ValidDate) After(other ValidDate) bool {
	return d.t.After(other.t)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d ValidDate) Compare(other ValidDate) int {
	switch {
	case d.t.Before(other.t):
		return -1
	case d.t.After(other.t):
		return 1
	default:
		return 0
	}
}

func (d ValidDate) Weekday() time.Weekday {
	return d.t.Weekday()
}

// Days the number of days from d to other, negative when other is before d.
func (d ValidDate) Days(other ValidDate) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func (d ValidDate) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// String formats d as yyyy-mm-dd.
func (d ValidDate) String() string {
	return d.t.Format(DateLayout)
}

// MarshalText encodes d as yyyy-mm-dd, which also orders keys chronologically in JSON objects.
func (d ValidDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a yyyy-mm-dd date. Only the format is checked: dates reported by
// the server are trusted, as the server's "today" may be ahead of the local clock.
func (d *ValidDate) UnmarshalText(text []byte) error {
	t, err := time.Parse(DateLayout, string(text))
	if err != nil {
		return &InvalidDateError{Input: string(text)}
	}
	d.t = t
	return nil
}
