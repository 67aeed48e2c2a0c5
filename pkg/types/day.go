package types

import (
	"errors"
	"time"
)

// dayLayout is the wire format for calendar days.
const dayLayout = "2006-01-02"

// ErrInvalidDay is returned when a day string is not a valid YYYY-MM-DD date.
var ErrInvalidDay = errors.New("day must be a valid YYYY-MM-DD date")

// Day is a calendar-day string in YYYY-MM-DD form, in the user's local
// time zone. Days compare correctly as strings, which the store relies on
// for range queries.
type Day string

// ParseDay validates s and returns it as a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return "", ErrInvalidDay
	}
	// Reject normalized inputs like "2024-6-10" surviving via lenient parse.
	if t.Format(dayLayout) != s {
		return "", ErrInvalidDay
	}
	return Day(s), nil
}

// Validate reports whether the day is well-formed.
func (d Day) Validate() error {
	_, err := ParseDay(string(d))
	return err
}

// Today returns the current local calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// DayOf returns the calendar day containing t, in t's location.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// AddDays returns the day n days after d (n may be negative).
// The receiver must be valid.
func (d Day) AddDays(n int) Day {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return d
	}
	return Day(t.AddDate(0, 0, n).Format(dayLayout))
}
