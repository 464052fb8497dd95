// Package datediff computes the calendar distance between two dates in days,
// months and years.
//
// The day count is exact. Months and years come from a calendar subtraction
// (the way one would count them on a wall calendar), not from dividing the
// day count. Two switches change the counting rules:
//
//   - IncludeEndDay counts the end day itself as elapsed time, so Monday to
//     Friday is five days instead of four.
//   - IncludeEveryStartedPeriod counts a month or year that has started but
//     not completed as a full one, judged by comparing the day of month and
//     the month of year of the two dates.
//
// A span whose start and end fall on the same day is always one day long.
package datediff

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/config"
)

// ErrInvalidRange is matched by every error reporting a start after the end.
var ErrInvalidRange = errors.New(config.ErrInvalidRange)

// RangeError reports a start date strictly after the end date.
type RangeError struct {
	Start caldate.Date
	End   caldate.Date
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s > %s", config.ErrInvalidRange, e.Start, e.End)
}

// Is makes errors.Is(err, ErrInvalidRange) hold for any *RangeError.
func (e *RangeError) Is(target error) bool { return target == ErrInvalidRange }

// Options selects the counting rules.
type Options struct {
	IncludeEndDay             bool
	IncludeEveryStartedPeriod bool
}

// Result is the elapsed calendar distance. Each field is computed on its own;
// Years is not derived from Months at read time.
type Result struct {
	Days   int `json:"days"`
	Months int `json:"months"`
	Years  int `json:"years"`
}

// Compute returns the distance from start to end. It fails with a *RangeError
// when start is after end.
func Compute(start, end caldate.Date, opts Options) (Result, error) {
	if start.After(end) {
		return Result{}, &RangeError{Start: start, End: end}
	}

	if start == end {
		return Result{Days: 1}, nil
	}

	spanEnd := end
	if opts.IncludeEndDay {
		spanEnd = end.AddDays(1)
	}

	years, months := calendarSpan(start, spanEnd)
	res := Result{
		Days:   start.DaysUntil(spanEnd),
		Months: years*12 + months,
		Years:  years,
	}

	if opts.IncludeEveryStartedPeriod {
		// Judged on the dates as given, before the end-day adjustment.
		if start.Month >= end.Month && start.Day > end.Day {
			res.Months++
		}
		if start.Month > end.Month {
			res.Years++
		}
	}

	return res, nil
}

// ComputeStrings parses both dates and calls Compute. Keywords such as
// "today" are resolved against clock.
func ComputeStrings(start, end string, opts Options, clock caldate.Clock) (Result, error) {
	s, err := caldate.ParseWithClock(start, clock)
	if err != nil {
		return Result{}, err
	}
	e, err := caldate.ParseWithClock(end, clock)
	if err != nil {
		return Result{}, err
	}
	return Compute(s, e, opts)
}

// calendarSpan decomposes from..to (from <= to) into whole years and the
// remaining whole months. A month only counts once its day of month is reached.
func calendarSpan(from, to caldate.Date) (years, months int) {
	total := (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
	if to.Day < from.Day {
		total--
	}
	return total / 12, total % 12
}

// Calculator binds a pair of dates and options and computes the result once.
// Later calls return the cached result (or error). It is safe for concurrent use.
type Calculator struct {
	Start   caldate.Date
	End     caldate.Date
	Options Options

	once sync.Once
	res  Result
	err  error
}

// NewCalculator returns a calculator for start..end.
func NewCalculator(start, end caldate.Date, opts Options) *Calculator {
	return &Calculator{Start: start, End: end, Options: opts}
}

// Result computes the distance on first use and returns the cached value afterwards.
func (c *Calculator) Result() (Result, error) {
	c.once.Do(func() {
		c.res, c.err = Compute(c.Start, c.End, c.Options)
		if c.err == nil {
			slog.Debug(config.MsgDiffComputed,
				config.LogKeyComponent, config.CompDiff,
				config.LogKeyStart, c.Start.String(),
				config.LogKeyEnd, c.End.String(),
				config.LogKeyDays, c.res.Days,
				config.LogKeyMonths, c.res.Months,
				config.LogKeyYears, c.res.Years,
			)
		}
	})
	return c.res, c.err
}

// Days returns the day count of the cached result.
func (c *Calculator) Days() (int, error) {
	r, err := c.Result()
	return r.Days, err
}

// Months returns the month count of the cached result.
func (c *Calculator) Months() (int, error) {
	r, err := c.Result()
	return r.Months, err
}

// Years returns the year count of the cached result.
func (c *Calculator) Years() (int, error) {
	r, err := c.Result()
	return r.Years, err
}
