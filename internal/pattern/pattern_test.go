package pattern_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-holiday/internal/pattern"
)

const validDoc = `
static:
  "01-01": New Year
  "02-29": Leap Day
dynamic:
  easterFriday: Good Friday
  EASTER_MONDAY: Easter Monday
`

func TestDecode_Valid(t *testing.T) {
	t.Parallel()

	p, err := pattern.Decode("XX", []byte(validDoc))
	require.NoError(t, err)

	assert.Equal(t, "XX", p.Country)
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, "New Year", p.Static[pattern.MonthDay{Month: time.January, Day: 1}])
	assert.Equal(t, "Leap Day", p.Static[pattern.MonthDay{Month: time.February, Day: 29}])
	assert.Equal(t, "Good Friday", p.Dynamic[pattern.EasterFriday])
	assert.Equal(t, "Easter Monday", p.Dynamic[pattern.EasterMonday])
	assert.Equal(t, []pattern.MonthDay{
		{Month: time.January, Day: 1},
		{Month: time.February, Day: 29},
	}, p.StaticKeys())
}

func TestDecode_FormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "static: [unclosed"},
		{"empty document", ""},
		{"missing dynamic", "static:\n  \"01-01\": New Year\n"},
		{"missing static", "dynamic:\n  easterMonday: Easter Monday\n"},
		{"empty static", "static: {}\ndynamic:\n  easterMonday: Easter Monday\n"},
		{"unknown anchor", "static:\n  \"01-01\": A\ndynamic:\n  pentecost: B\n"},
		{"bad month-day", "static:\n  \"13-01\": A\ndynamic:\n  easterMonday: B\n"},
		{"impossible day", "static:\n  \"04-31\": A\ndynamic:\n  easterMonday: B\n"},
		{"empty name", "static:\n  \"01-01\": \"\"\ndynamic:\n  easterMonday: B\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pattern.Decode("XX", []byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, pattern.ErrFormat), "got %v", err)
			assert.False(t, errors.Is(err, pattern.ErrNotFound))
		})
	}
}

func TestNormalizeCountry(t *testing.T) {
	t.Parallel()

	valid := map[string]string{"cz": "CZ", "Sk": "SK", " de ": "DE", "CZ": "CZ"}
	for in, want := range valid {
		got, err := pattern.NormalizeCountry(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "c", "cze", "12", "C1", "../CZ", "čz", "ß", "ﬀ", "ık", "ſk", "\u212Az"} {
		_, err := pattern.NormalizeCountry(in)
		assert.True(t, errors.Is(err, pattern.ErrNotFound), "input %q", in)
	}
}

func TestParseAnchor(t *testing.T) {
	t.Parallel()

	tests := map[string]pattern.Anchor{
		"easterFriday":  pattern.EasterFriday,
		"EASTER_FRIDAY": pattern.EasterFriday,
		"easterSunday":  pattern.EasterSunday,
		"EASTER_SUNDAY": pattern.EasterSunday,
		"easterMonday":  pattern.EasterMonday,
		"easter_monday": pattern.EasterMonday,
	}
	for in, want := range tests {
		got, err := pattern.ParseAnchor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := pattern.ParseAnchor("whitMonday")
	assert.Error(t, err)
}

func TestAnchor_OffsetsAndText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -2, pattern.EasterFriday.OffsetDays())
	assert.Equal(t, 0, pattern.EasterSunday.OffsetDays())
	assert.Equal(t, 1, pattern.EasterMonday.OffsetDays())

	text, err := pattern.EasterMonday.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "easterMonday", string(text))

	var a pattern.Anchor
	require.NoError(t, a.UnmarshalText([]byte("EASTER_SUNDAY")))
	assert.Equal(t, pattern.EasterSunday, a)

	_, err = pattern.Anchor(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Anchor(42)", pattern.Anchor(42).String())
}

func TestMonthDay_In(t *testing.T) {
	t.Parallel()

	leap := pattern.MonthDay{Month: time.February, Day: 29}
	_, ok := leap.In(2023)
	assert.False(t, ok)

	got, ok := leap.In(2024)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "02-29", leap.String())
}

// TestEmbedded_AllValid loads every shipped pattern.
func TestEmbedded_AllValid(t *testing.T) {
	t.Parallel()

	src := pattern.Embedded()
	codes, err := src.Countries(context.Background())
	require.NoError(t, err)
	require.Contains(t, codes, "CZ")
	require.Contains(t, codes, "SK")

	for _, code := range codes {
		p, err := src.Load(context.Background(), code)
		require.NoError(t, err, code)
		assert.NotEmpty(t, p.Static, code)
		assert.NotEmpty(t, p.Dynamic, code)
	}
}

func TestEmbedded_CZ(t *testing.T) {
	t.Parallel()

	p, err := pattern.Embedded().Load(context.Background(), "cz")
	require.NoError(t, err)

	assert.Equal(t, "CZ", p.Country)
	assert.Len(t, p.Static, 11)
	assert.Equal(t, "Velký pátek", p.Dynamic[pattern.EasterFriday])
	assert.Equal(t, "Velikonoční pondělí", p.Dynamic[pattern.EasterMonday])
	assert.Equal(t, "Den české státnosti", p.Static[pattern.MonthDay{Month: time.September, Day: 28}])
}

func TestEmbedded_NotFound(t *testing.T) {
	t.Parallel()

	_, err := pattern.Embedded().Load(context.Background(), "ZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pattern.ErrNotFound))

	var nf *pattern.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "ZZ", nf.Country)
}
