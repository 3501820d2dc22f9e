package ics

import (
	"errors"
	"strings"

	ical "github.com/arran4/golang-ical"
)

// EventInfo is one event as read back out of a generated feed.
type EventInfo struct {
	UID     string
	Summary string
	Start   string
	End     string
	AllDay  bool
}

// Report summarizes a parsed feed for the verify command and for
// round-trip tests.
type Report struct {
	ProdID string
	Events []EventInfo
}

// Verify parses a feed document and extracts the event skeleton. It
// errors on an empty or unparseable document; individual events are
// reported as found, with all-day detection based on the DTSTART value
// form.
func Verify(body []byte) (*Report, error) {
	if len(body) == 0 {
		return nil, errors.New("empty feed")
	}

	cal, err := ical.ParseCalendar(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	for _, p := range cal.CalendarProperties {
		if p.IANAToken == string(ical.PropertyProductId) {
			rep.ProdID = p.Value
		}
	}

	for _, ve := range cal.Events() {
		var info EventInfo
		if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
			info.UID = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
			info.Summary = p.Value
		}
		if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
			info.Start = p.Value
			info.AllDay = isDateOnly(p)
		}
		if p := ve.GetProperty(ical.ComponentPropertyDtEnd); p != nil {
			info.End = p.Value
		}
		rep.Events = append(rep.Events, info)
	}
	return rep, nil
}

// isDateOnly reports whether DTSTART carries a date value, either via
// VALUE=DATE or by lacking a time component.
func isDateOnly(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
