package engine_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/config"
	"github.com/tartampluch/go-holiday/internal/engine"
	"github.com/tartampluch/go-holiday/internal/holiday"
	"github.com/tartampluch/go-holiday/internal/pattern"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func czList(t *testing.T, year int) holiday.List {
	t.Helper()
	b := holiday.NewBuilder(pattern.Embedded(), nil)
	list, err := b.Holidays(context.Background(), "CZ", year)
	require.NoError(t, err)
	return list
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestCalendar_Success(t *testing.T) {
	now := time.Date(2023, 3, 1, 10, 0, 0, 0, time.UTC)
	gen := &engine.Generator{
		Clock:        MockClock{CurrentTime: now},
		CalendarName: func(country string) string { return "Holidays " + country },
	}

	list := czList(t, 2023)
	data, err := gen.Calendar(context.Background(), "CZ", list)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "X-WR-CALNAME:Holidays CZ")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20230407")
	assert.Contains(t, ics, "DTEND;VALUE=DATE:20230408")
	assert.Contains(t, ics, "DTSTAMP:20230301T100000Z")
	assert.Equal(t, len(list), strings.Count(ics, "BEGIN:VEVENT"))
}

func TestCalendar_RoundTrip(t *testing.T) {
	gen := &engine.Generator{Clock: MockClock{CurrentTime: time.Now()}}

	list := czList(t, 2024)
	data, err := gen.Calendar(context.Background(), "CZ", list)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	assert.Equal(t, "CZ", cal.Props.Get(config.PropXWRCalName).Value, "falls back to the country code")

	events := cal.Events()
	require.Len(t, events, len(list))
	for i, e := range events {
		assert.Equal(t, list[i].Name, e.Props.Get(config.PropSummary).Value)
		assert.Equal(t, engine.EventUID("CZ", list[i]), e.Props.Get(config.PropUID).Value)
		assert.Equal(t, config.ICalTransp, e.Props.Get(config.PropTransp).Value)
	}
}

func TestEventUID_Stable(t *testing.T) {
	t.Parallel()

	e := holiday.Entry{Date: caldate.New(2023, time.May, 1), Name: "Svátek práce"}

	uid := engine.EventUID("CZ", e)
	assert.Equal(t, uid, engine.EventUID("CZ", e))
	assert.True(t, strings.HasSuffix(uid, "-20230501@"+config.ICalDomain), uid)

	next := e
	next.Date = caldate.New(2024, time.May, 1)
	assert.NotEqual(t, uid, engine.EventUID("CZ", next), "year changes the UID")
	assert.NotEqual(t, uid, engine.EventUID("SK", e), "country changes the UID")
}

func TestCalendar_Empty(t *testing.T) {
	t.Parallel()

	data, err := (&engine.Generator{}).Calendar(context.Background(), "CZ", nil)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestCalendar_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &engine.Generator{Clock: MockClock{CurrentTime: time.Now()}}
	_, err := gen.Calendar(ctx, "CZ", czList(t, 2023))

	assert.Error(t, err)
	assert.Equal(t, context.Canceled, err)
}
