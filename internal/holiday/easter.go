package holiday

import (
	"time"

	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/pattern"
)

// EasterSunday returns the date of Easter Sunday in the Gregorian calendar,
// using the anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func EasterSunday(year int) caldate.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return caldate.Date{Year: year, Month: time.Month(month), Day: day}
}

// Easter holds the movable anchors of one year.
type Easter struct {
	Friday caldate.Date `json:"easterFriday"`
	Sunday caldate.Date `json:"easterSunday"`
	Monday caldate.Date `json:"easterMonday"`
}

// EasterDates computes Good Friday, Easter Sunday and Easter Monday for year.
func EasterDates(year int) Easter {
	sunday := EasterSunday(year)
	return Easter{
		Friday: sunday.AddDays(pattern.EasterFriday.OffsetDays()),
		Sunday: sunday,
		Monday: sunday.AddDays(pattern.EasterMonday.OffsetDays()),
	}
}

// Resolve returns the concrete date of an anchor.
func (e Easter) Resolve(a pattern.Anchor) (caldate.Date, bool) {
	switch a {
	case pattern.EasterFriday:
		return e.Friday, true
	case pattern.EasterSunday:
		return e.Sunday, true
	case pattern.EasterMonday:
		return e.Monday, true
	default:
		return caldate.Date{}, false
	}
}
