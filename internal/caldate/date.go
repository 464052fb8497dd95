// Package caldate provides a day-granularity calendar date.
//
// A Date carries no time of day and no location: constructing one from a
// time.Time keeps the calendar date as seen in that value's own location and
// drops everything finer. Dates are comparable and can be used as map keys.
package caldate

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-holiday/internal/config"
)

// Date is a calendar date (year, month, day).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for the given components, normalizing overflows the
// way time.Date does (e.g. February 30 becomes March 1 or 2).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime extracts the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Valid reports whether year-month-day names an existing calendar day.
func Valid(year int, month time.Month, day int) bool {
	return New(year, month, day) == Date{Year: year, Month: month, Day: day}
}

const secondsPerDay = 24 * 60 * 60

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1 if d is before other, 0 if equal and +1 if after.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool { return d == other }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to other (negative if other is earlier).
// It works on Unix seconds since time.Duration cannot span more than about 292 years.
func (d Date) DaysUntil(other Date) int {
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// MonthDay formats the month and day as MM-DD.
func (d Date) MonthDay() string {
	return d.Time().Format(config.MonthDayFormat)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only YYYY-MM-DD is accepted.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(config.DateFormatISO, string(text))
	if err != nil {
		return &ParseError{Value: string(text), Err: err}
	}
	*d = FromTime(t)
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
