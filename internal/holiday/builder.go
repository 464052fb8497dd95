// Package holiday builds per-country public holiday lists.
//
// A list combines the fixed dates of a country's pattern with the movable
// dates derived from Easter Sunday. Movable dates are inserted after fixed
// ones, so when both fall on the same day the movable name wins.
package holiday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/config"
	"github.com/tartampluch/go-holiday/internal/pattern"
)

// Years outside this range cannot be formatted as YYYY.
const (
	MinYear = 1
	MaxYear = 9999
)

// ErrInvalidYear is returned for years outside MinYear..MaxYear.
var ErrInvalidYear = errors.New(config.ErrInvalidYear)

// Builder assembles holiday lists from a pattern source.
type Builder struct {
	Source pattern.Source // Normally a *pattern.Cache.
	Clock  caldate.Clock  // Resolves the current year.
}

// NewBuilder returns a builder reading patterns from src. A nil clock means the real clock.
func NewBuilder(src pattern.Source, clock caldate.Clock) *Builder {
	if clock == nil {
		clock = caldate.RealClock{}
	}
	return &Builder{Source: src, Clock: clock}
}

// Holidays returns the holidays of country in year, ordered by date.
// A year of 0 selects the current year.
func (b *Builder) Holidays(ctx context.Context, country string, year int) (List, error) {
	code, err := pattern.NormalizeCountry(country)
	if err != nil {
		return nil, err
	}

	if year == config.CurrentYear {
		year = b.currentYear()
	}
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	p, err := b.Source.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(p.Static) == 0 || len(p.Dynamic) == 0 {
		return nil, &pattern.FormatError{Country: code, Reason: "static and dynamic sections are required"}
	}

	list := Assemble(p, year)

	slog.Debug(config.MsgListBuilt,
		config.LogKeyComponent, config.CompHoliday,
		config.LogKeyCountry, code,
		config.LogKeyYear, year,
		config.LogKeyCount, len(list),
	)
	return list, nil
}

// HolidaysForCurrentYear is Holidays for the clock's current year.
func (b *Builder) HolidaysForCurrentYear(ctx context.Context, country string) (List, error) {
	return b.Holidays(ctx, country, b.currentYear())
}

func (b *Builder) currentYear() int {
	return caldate.Today(b.Clock).Year
}

// Assemble merges the fixed and movable dates of p for year and sorts them by
// date string. Fixed dates that do not exist in year (02-29) are skipped.
func Assemble(p *pattern.Pattern, year int) List {
	easter := EasterDates(year)
	byDate := make(map[string]Entry, p.Len())

	for md, name := range p.Static {
		t, ok := md.In(year)
		if !ok {
			continue
		}
		d := caldate.FromTime(t)
		byDate[d.String()] = Entry{Date: d, Name: name}
	}

	// Movable entries go second and overwrite fixed ones on the same day.
	for _, a := range pattern.Anchors {
		name, ok := p.Dynamic[a]
		if !ok {
			continue
		}
		d, _ := easter.Resolve(a)
		byDate[d.String()] = Entry{Date: d, Name: name}
	}

	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make(List, 0, len(keys))
	for _, k := range keys {
		list = append(list, byDate[k])
	}
	return list
}
