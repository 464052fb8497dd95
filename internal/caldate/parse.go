package caldate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-holiday/internal/config"
)

// ErrDateParse is matched by every error returned from Parse.
var ErrDateParse = errors.New(config.ErrDateParse)

// ParseError reports a date string that no supported layout accepts.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", config.ErrDateParse, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %q", config.ErrDateParse, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDateParse) hold for any *ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrDateParse }

// layouts are tried in order; the first match wins.
var layouts = []string{
	config.DateFormatISO,
	config.DateFormatBasic,
	config.DateFormatDateTime,
	config.DateFormatSpaced,
	config.DateFormatRFC3339,
	config.DateFormatDotted,
	config.DateFormatDottedS,
}

// Parse reads a date string using the real clock for keywords.
func Parse(value string) (Date, error) {
	return ParseWithClock(value, RealClock{})
}

// ParseWithClock reads a date string. Besides the fixed layouts it accepts the
// keywords today, yesterday and tomorrow, resolved against clock. Any time of
// day in the input is discarded.
func ParseWithClock(value string, clock Clock) (Date, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return Date{}, &ParseError{Value: value}
	}

	switch strings.ToLower(s) {
	case config.KeywordToday:
		return Today(clock), nil
	case config.KeywordYesterday:
		return Today(clock).AddDays(-1), nil
	case config.KeywordTomorrow:
		return Today(clock).AddDays(1), nil
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return FromTime(t), nil
		}
		lastErr = err
	}
	return Date{}, &ParseError{Value: value, Err: lastErr}
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}
