package pattern

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-holiday/internal/config"
)

// Sentinels for errors.Is classification.
var (
	ErrNotFound = errors.New(config.ErrPatternNotFound)
	ErrFormat   = errors.New(config.ErrPatternFormat)
)

// NotFoundError reports a malformed country code or a country without a pattern.
type NotFoundError struct {
	Country string
	Err     error // Optional: underlying cause (e.g. a 404 from a remote source)
}

func (e *NotFoundError) Error() string {
	base := fmt.Sprintf("%s for country %q", config.ErrPatternNotFound, e.Country)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// FormatError reports pattern data that is structurally invalid.
type FormatError struct {
	Country string
	Reason  string
	Err     error
}

func (e *FormatError) Error() string {
	base := fmt.Sprintf("%s for country %q", config.ErrPatternFormat, e.Country)
	if e.Reason != "" {
		base += ": " + e.Reason
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }
