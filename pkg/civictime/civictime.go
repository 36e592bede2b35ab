// Package civictime provides calendar-date arithmetic anchored to the New
// York City reference timezone. The 311 calendar describes civil days, not
// instants, so the package works with a plain comparable Date value instead
// of time.Time.
package civictime

import (
	"fmt"
	"time"
)

// ReferenceTimezone is the timezone "today" is computed in. Calendar days
// flip at midnight Eastern regardless of where the process runs.
const ReferenceTimezone = "America/New_York"

var eastern = mustLoadLocation(ReferenceTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("civictime: load %s: %v", name, err))
	}
	return loc
}

// Date is a civil calendar date. The zero value is not a valid date.
// Date is comparable and safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the current date in the reference timezone.
func Today() Date {
	return FromTime(time.Now().In(eastern))
}

// FromTime returns the Date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the date at midnight UTC. Useful for arithmetic and
// formatting; UTC avoids DST edge cases when adding day multiples.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

// After reports whether d is later than o.
func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Parse parses a date string in the given time layout.
func Parse(layout, value string) (Date, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Date{}, err
	}
	return FromTime(t), nil
}

// Format formats the date with the given time layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// String returns the date in ISO 8601 form (YYYY-MM-DD).
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalText implements encoding.TextMarshaler, so Date renders as an ISO
// string in JSON both as a value and as a map key.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse("2006-01-02", string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
