package ics

import (
	ical "github.com/arran4/golang-ical"
)

// The feed carries exactly one VTIMEZONE: the institutional zone,
// Australia/Sydney, with its first-Sunday-of-April and
// first-Sunday-of-October transitions. Rows naming another zone still
// get a TZID reference but no extra definition block.
func addInstitutionTimezone(cal *ical.Calendar) {
	tz := cal.AddTimezone("Australia/Sydney")

	std := tz.AddStandard()
	std.AddProperty(ical.ComponentProperty(ical.PropertyDtstart), "19700405T030000")
	std.AddProperty(ical.ComponentProperty(ical.PropertyTzoffsetfrom), "+1100")
	std.AddProperty(ical.ComponentProperty(ical.PropertyTzoffsetto), "+1000")
	std.AddProperty(ical.ComponentProperty(ical.PropertyTzname), "AEST")
	std.AddProperty(ical.ComponentPropertyRrule, "FREQ=YEARLY;BYMONTH=4;BYDAY=1SU")

	// golang-ical has no AddDaylight counterpart to AddStandard, so the
	// DAYLIGHT component is appended by hand.
	dst := &ical.Daylight{}
	dst.AddProperty(ical.ComponentProperty(ical.PropertyDtstart), "19701004T020000")
	dst.AddProperty(ical.ComponentProperty(ical.PropertyTzoffsetfrom), "+1000")
	dst.AddProperty(ical.ComponentProperty(ical.PropertyTzoffsetto), "+1100")
	dst.AddProperty(ical.ComponentProperty(ical.PropertyTzname), "AEDT")
	dst.AddProperty(ical.ComponentPropertyRrule, "FREQ=YEARLY;BYMONTH=10;BYDAY=1SU")
	tz.Components = append(tz.Components, dst)
}
