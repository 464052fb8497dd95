// Package holiday computes calendar distances between dates and builds
// per-country public holiday lists.
//
// Basic usage with package-level functions:
//
//	res, err := holiday.DateDifferenceStrings("2023-01-15", "2024-03-10", false, false)
//	// res.Days == 420, res.Months == 13, res.Years == 1
//
//	list, err := holiday.Holidays("CZ", 2023)
//	for _, h := range list {
//		fmt.Println(h.Date, h.Name)
//	}
//
// Holiday lists are built from patterns compiled into the package: fixed
// month-day dates plus dates relative to Easter Sunday (Good Friday, Easter
// Sunday, Easter Monday). Patterns are parsed once per country and cached
// for the life of the process.
package holiday

import (
	"context"
	"sync"
	"time"

	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/datediff"
	"github.com/tartampluch/go-holiday/internal/engine"
	hl "github.com/tartampluch/go-holiday/internal/holiday"
	"github.com/tartampluch/go-holiday/internal/pattern"
)

// Date is a calendar day without time of day or location.
type Date = caldate.Date

// Result is the distance between two dates.
type Result = datediff.Result

// Entry is one holiday of a list.
type Entry = hl.Entry

// List is a holiday list ordered by date.
type List = hl.List

// EasterDates holds Good Friday, Easter Sunday and Easter Monday of one year.
type EasterDates = hl.Easter

// Errors reported by this package. Match them with errors.Is.
var (
	ErrInvalidRange    = datediff.ErrInvalidRange
	ErrDateParse       = caldate.ErrDateParse
	ErrPatternNotFound = pattern.ErrNotFound
	ErrPatternFormat   = pattern.ErrFormat
	ErrInvalidYear     = hl.ErrInvalidYear
)

// defaultBuilder serves the package-level functions. It is built on first use.
var defaultBuilder = sync.OnceValue(func() *hl.Builder {
	return hl.NewBuilder(pattern.NewCache(pattern.Embedded()), nil)
})

// DateDifference returns the days, months and years from start to end.
// Only the calendar date of each time, in its own location, is used.
func DateDifference(start, end time.Time, includeEndDay, everyStarted bool) (Result, error) {
	return datediff.Compute(caldate.FromTime(start), caldate.FromTime(end), datediff.Options{
		IncludeEndDay:             includeEndDay,
		IncludeEveryStartedPeriod: everyStarted,
	})
}

// DateDifferenceStrings parses start and end and calls DateDifference.
// Besides YYYY-MM-DD it accepts the keywords today, yesterday and tomorrow.
func DateDifferenceStrings(start, end string, includeEndDay, everyStarted bool) (Result, error) {
	return datediff.ComputeStrings(start, end, datediff.Options{
		IncludeEndDay:             includeEndDay,
		IncludeEveryStartedPeriod: everyStarted,
	}, caldate.RealClock{})
}

// Holidays returns the public holidays of a two-letter country code in year,
// sorted by date. A year of 0 selects the current year.
func Holidays(country string, year int) (List, error) {
	return defaultBuilder().Holidays(context.Background(), country, year)
}

// HolidaysForCurrentYear is Holidays for the current year.
func HolidaysForCurrentYear(country string) (List, error) {
	return defaultBuilder().HolidaysForCurrentYear(context.Background(), country)
}

// Easter returns the Easter anchors of year.
func Easter(year int) EasterDates {
	return hl.EasterDates(year)
}

// Calendar renders the holidays of country in year as an iCalendar feed.
func Calendar(country string, year int) ([]byte, error) {
	list, err := Holidays(country, year)
	if err != nil {
		return nil, err
	}
	code, err := pattern.NormalizeCountry(country)
	if err != nil {
		return nil, err
	}
	gen := &engine.Generator{}
	return gen.Calendar(context.Background(), code, list)
}
