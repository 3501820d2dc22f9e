package model

import "time"

// Event is one fully-resolved calendar event, ready to be rendered
// into the feed. It exists only for the duration of one row's
// processing; the builder never mutates it after rendering.
type Event struct {
	UID     string
	Summary string

	Location    string
	Description string
	URL         string

	// Categories holds the non-empty of course, category and location,
	// in that order.
	Categories []string

	// Transparent marks the event as non-blocking in calendar views.
	Transparent bool

	// Timezone qualifies Start/End for timed events. Unused when
	// AllDay is set.
	Timezone string

	AllDay bool

	// For all-day events Start is the first day and End the exclusive
	// day after the last; for timed events both are local wall-clock
	// instants in Timezone.
	Start time.Time
	End   time.Time
}
