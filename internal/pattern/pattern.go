// Package pattern loads per-country holiday patterns.
//
// A pattern has two parts: fixed dates given as MM-DD, and movable dates given
// as an anchor relative to Easter Sunday. Patterns are YAML documents:
//
//	static:
//	  "01-01": New Year's Day
//	dynamic:
//	  easterMonday: Easter Monday
//
// The package ships the data for a few countries embedded in the binary and
// can also read patterns from a directory or over HTTP. Loaded patterns are
// immutable; Cache keeps them for the lifetime of the process.
package pattern

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/tartampluch/go-holiday/internal/config"
)

// leapYear validates MM-DD keys so that 02-29 is accepted.
const leapYear = 2000

var countryRe = regexp.MustCompile(config.CountryPattern)

var upper = cases.Upper(language.Und)

// MonthDay is a fixed day of the year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay reads an MM-DD key.
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse(config.MonthDayFormat, strings.TrimSpace(s))
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: %w", s, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

// String formats the key as MM-DD.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// In reports the date of md in year and whether that day exists (02-29 only
// exists in leap years).
func (md MonthDay) In(year int) (time.Time, bool) {
	t := time.Date(year, md.Month, md.Day, 0, 0, 0, 0, time.UTC)
	return t, t.Month() == md.Month && t.Day() == md.Day
}

// Pattern is the holiday definition of one country. Treat it as read-only.
type Pattern struct {
	Country string
	Static  map[MonthDay]string
	Dynamic map[Anchor]string
}

// Len returns the number of entries in both parts.
func (p *Pattern) Len() int {
	return len(p.Static) + len(p.Dynamic)
}

// StaticKeys returns the fixed dates in calendar order.
func (p *Pattern) StaticKeys() []MonthDay {
	keys := make([]MonthDay, 0, len(p.Static))
	for k := range p.Static {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Month != keys[j].Month {
			return keys[i].Month < keys[j].Month
		}
		return keys[i].Day < keys[j].Day
	})
	return keys
}

// NormalizeCountry upper-cases a country code and checks the two-letter format.
// Only ASCII letters are accepted, so inputs such as "ß" cannot case-map into a code.
func NormalizeCountry(code string) (string, error) {
	raw := strings.TrimSpace(code)
	if strings.IndexFunc(raw, notASCIILetter) >= 0 {
		return "", &NotFoundError{Country: code}
	}
	c := upper.String(raw)
	if !countryRe.MatchString(c) {
		return "", &NotFoundError{Country: code}
	}
	return c, nil
}

func notASCIILetter(r rune) bool {
	return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z')
}

// document is the on-disk layout of a pattern file.
type document struct {
	Static  map[string]string `yaml:"static"`
	Dynamic map[string]string `yaml:"dynamic"`
}

// Decode parses and validates a YAML pattern for country.
func Decode(country string, data []byte) (*Pattern, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Country: country, Reason: config.ErrPatternDecode, Err: err}
	}

	if len(doc.Static) == 0 || len(doc.Dynamic) == 0 {
		return nil, &FormatError{Country: country, Reason: "static and dynamic sections are required"}
	}

	p := &Pattern{
		Country: country,
		Static:  make(map[MonthDay]string, len(doc.Static)),
		Dynamic: make(map[Anchor]string, len(doc.Dynamic)),
	}

	for key, name := range doc.Static {
		md, err := ParseMonthDay(key)
		if err != nil {
			return nil, &FormatError{Country: country, Err: err}
		}
		if _, ok := md.In(leapYear); !ok {
			return nil, &FormatError{Country: country, Reason: fmt.Sprintf("day %s does not exist", key)}
		}
		if strings.TrimSpace(name) == "" {
			return nil, &FormatError{Country: country, Reason: fmt.Sprintf("empty name for %s", key)}
		}
		p.Static[md] = name
	}

	for key, name := range doc.Dynamic {
		a, err := ParseAnchor(key)
		if err != nil {
			return nil, &FormatError{Country: country, Err: err}
		}
		if strings.TrimSpace(name) == "" {
			return nil, &FormatError{Country: country, Reason: fmt.Sprintf("empty name for %s", key)}
		}
		p.Dynamic[a] = name
	}

	return p, nil
}
