// Package ics synthesizes the iCalendar feed from normalized schedule
// rows: one VCALENDAR with the institutional VTIMEZONE followed by one
// VEVENT per accepted row, in source order.
package ics

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "classfeed/internal/log"
	"classfeed/internal/model"
	"classfeed/internal/roster"
)

const localLayout = "20060102T150405"

// Options configures one feed build.
type Options struct {
	// Timezone applies to timed events whose row has no timezone cell.
	Timezone string
	// ProdID is the VCALENDAR product identity.
	ProdID string
	// UIDDomain suffixes derived event identifiers.
	UIDDomain string
	// Now supplies the DTSTAMP instant; tests pin it for reproducible
	// output. Defaults to time.Now.
	Now func() time.Time
}

// Result is the outcome of one build.
type Result struct {
	Feed    string
	Events  int
	Skipped int
}

// Builder turns a roster table into a feed. It owns all run state;
// nothing is shared between builds.
type Builder struct {
	opts Options
}

func NewBuilder(opts Options) *Builder {
	if opts.Timezone == "" {
		opts.Timezone = "Australia/Sydney"
	}
	if opts.ProdID == "" {
		opts.ProdID = "-//YourUni//Class Feeds 1.0//EN"
	}
	if opts.UIDDomain == "" {
		opts.UIDDomain = "youruni"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Builder{opts: opts}
}

// Build processes every data row in order. Malformed rows are skipped
// and counted, never fatal. The feed is returned with LF line endings.
func (b *Builder) Build(table *roster.Table) Result {
	cols := roster.MapColumns(table.Headers)

	cal := ical.NewCalendar()
	cal.SetProductId(b.opts.ProdID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ical.MethodPublish)
	addInstitutionTimezone(cal)

	now := b.opts.Now().UTC()

	var res Result
	for i, row := range table.Rows {
		rownum := i + 2 // 1-based, header row is row 1
		ev, reason := b.normalize(cols, row)
		if ev == nil {
			res.Skipped++
			appLog.Debug("row skipped", "row", rownum, "reason", reason)
			continue
		}
		render(cal, ev, now)
		res.Events++
	}

	res.Feed = restoreCategorySeparators(strings.ReplaceAll(cal.Serialize(), "\r\n", "\n"))

	if res.Events == 0 {
		appLog.Warn("0 events written; check that Title and Start Date are filled and that dates are real date cells, not text")
	}
	return res
}

// normalize applies the acceptance policy to one row and resolves it
// into a render-ready event. A nil event means the row is skipped for
// the returned reason.
func (b *Builder) normalize(cols roster.Columns, row []string) (*model.Event, string) {
	if roster.Empty(row) {
		return nil, "empty row"
	}

	title := cols.Value(row, roster.FieldTitle)
	if title == "" {
		return nil, "missing title"
	}

	startDateRaw := cols.Value(row, roster.FieldStartDate)
	startDate, ok := roster.ToDate(startDateRaw)
	if !ok {
		return nil, "bad or missing start date"
	}

	course := cols.Value(row, roster.FieldCourse)
	category := cols.Value(row, roster.FieldCategory)
	location := cols.Value(row, roster.FieldLocation)
	description := cols.Value(row, roster.FieldDescription)
	link := cols.Value(row, roster.FieldURL)

	tz := cols.Value(row, roster.FieldTimezone)
	if tz == "" {
		tz = b.opts.Timezone
	}

	startTimeRaw := cols.Value(row, roster.FieldStartTime)
	endDateRaw := cols.Value(row, roster.FieldEndDate)
	endTimeRaw := cols.Value(row, roster.FieldEndTime)

	startTime, hasStartTime := roster.ToTime(startTimeRaw)
	_, hasEndTime := roster.ToTime(endTimeRaw)

	uid := cols.Value(row, roster.FieldUID)
	if uid == "" {
		uid = deriveUID(b.opts.UIDDomain,
			course, title, startDateRaw, endDateRaw, startTimeRaw, endTimeRaw, location)
	}

	summary := title
	if course != "" {
		summary = course + " — " + title
	}

	var categories []string
	for _, c := range []string{course, category, location} {
		if c != "" {
			categories = append(categories, c)
		}
	}

	ev := &model.Event{
		UID:         uid,
		Summary:     summary,
		Location:    location,
		Description: description,
		URL:         link,
		Categories:  categories,
		Transparent: roster.ToBool(cols.Value(row, roster.FieldTransparent)),
		Timezone:    tz,
		AllDay:      !hasStartTime && !hasEndTime,
	}

	if ev.AllDay {
		// Whole-day span with an exclusive end boundary. An
		// unparseable explicit end date falls back to the start date.
		endDate := startDate
		if d, ok := roster.ToDate(endDateRaw); ok {
			endDate = d
		}
		ev.Start = startDate
		ev.End = endDate.AddDate(0, 0, 1)
		return ev, ""
	}

	// Timed event. An explicit end date that does not parse makes the
	// end instant unresolvable; this still counts as a skip.
	endDate := startDate
	if endDateRaw != "" {
		d, ok := roster.ToDate(endDateRaw)
		if !ok {
			return nil, "bad end date"
		}
		endDate = d
	}

	startClock := time.Time{}
	if hasStartTime {
		startClock = startTime
	}

	// End clock falls back through end time, start time, midnight.
	endClockRaw := endTimeRaw
	if endClockRaw == "" {
		endClockRaw = startTimeRaw
	}
	endClock, ok := roster.ToTime(endClockRaw)
	if !ok {
		endClock = time.Time{}
	}

	ev.Start = combine(startDate, startClock)
	ev.End = combine(endDate, endClock)
	return ev, ""
}

// combine builds a local wall-clock instant from a date and a clock,
// truncated to minute precision.
func combine(d, clock time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

func render(cal *ical.Calendar, ev *model.Event, now time.Time) {
	e := cal.AddEvent(ev.UID)
	e.SetDtStampTime(now)
	e.SetSummary(ev.Summary)
	if ev.Transparent {
		e.SetTimeTransparency(ical.TransparencyTransparent)
	} else {
		e.SetTimeTransparency(ical.TransparencyOpaque)
	}
	if ev.Location != "" {
		e.SetLocation(ev.Location)
	}
	// The library applies RFC 5545 TEXT escaping at serialization, so
	// raw values go in as-is.
	if ev.Description != "" {
		e.SetDescription(ev.Description)
	}
	if ev.URL != "" {
		e.SetURL(ev.URL)
	}
	if len(ev.Categories) > 0 {
		e.SetProperty(ical.ComponentProperty(ical.PropertyCategories), strings.Join(ev.Categories, ","))
	}

	if ev.AllDay {
		e.SetAllDayStartAt(ev.Start)
		e.SetAllDayEndAt(ev.End)
		return
	}
	e.SetProperty(ical.ComponentPropertyDtStart, ev.Start.Format(localLayout), ical.WithTZID(ev.Timezone))
	e.SetProperty(ical.ComponentPropertyDtEnd, ev.End.Format(localLayout), ical.WithTZID(ev.Timezone))
}

// deriveUID fingerprints the identifying row fields. Identical fields
// always produce the identical UID; duplicate rows therefore share one
// on purpose, signalling a likely duplicate to the feed consumer.
func deriveUID(domain string, fields ...string) string {
	sum := sha1.Sum([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])[:16] + "@" + domain
}

// restoreCategorySeparators undoes the TEXT escaping of the commas
// that join the CATEGORIES list, which must stay literal separators.
func restoreCategorySeparators(feed string) string {
	lines := strings.Split(feed, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "CATEGORIES:") {
			lines[i] = strings.ReplaceAll(line, `\,`, ",")
		}
	}
	return strings.Join(lines, "\n")
}
