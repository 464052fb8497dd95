// Package engine renders holiday lists as iCalendar feeds.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/config"
	"github.com/tartampluch/go-holiday/internal/holiday"
)

// uidSpace scopes every event UID generated by this package.
var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(config.UIDNamespace))

// Generator converts holiday lists into iCalendar data.
type Generator struct {
	Clock caldate.Clock // Stamps DTSTAMP. Nil means the real clock.

	// CalendarName lets the caller inject a localized X-WR-CALNAME.
	CalendarName func(country string) string
}

// Calendar encodes list as a VCALENDAR with one all-day event per holiday.
// Events carry UIDs derived from country, date and name, so regenerating the
// same list yields the same UIDs.
func (g *Generator) Calendar(ctx context.Context, country string, list holiday.List) ([]byte, error) {
	start := time.Now()

	if len(list) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, g.calendarName(country))
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	now := g.now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, entry := range list {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		event := newEvent(country, entry)
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCountry, country,
		config.LogKeyCount, len(list),
		config.LogKeySizeBytes, buf.Len(),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// EventUID returns the stable UID of a holiday event.
func EventUID(country string, entry holiday.Entry) string {
	base := uuid.NewSHA1(uidSpace, []byte(country+"|"+entry.Name))
	return fmt.Sprintf(config.FormatUID, base, entry.Date.Time().Format(config.DateFormatBasic), config.ICalDomain)
}

func newEvent(country string, entry holiday.Entry) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, EventUID(country, entry))
	event.Props.SetText(config.PropSummary, entry.Name)
	event.Props.SetText(config.PropTransp, config.ICalTransp)
	event.Props.SetText(config.PropCategories, config.ICalCategory)

	// All-day events: DTEND is exclusive.
	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(entry.Date.Time())
	event.Props.Set(dtStartProp)

	dtEndProp := ical.NewProp(config.PropDTEnd)
	dtEndProp.SetDate(entry.Date.AddDays(1).Time())
	event.Props.Set(dtEndProp)

	return event
}

func (g *Generator) calendarName(country string) string {
	if g.CalendarName != nil {
		return g.CalendarName(country)
	}
	return country
}

func (g *Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}
