package event

import (
	"strings"
	"time"
)

// DateLayout is the only date format carried by the snapshot
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date as a calendar day, represented as
// midnight UTC. Returns false if the text is empty or malformed.
func ParseDate(dateText string) (time.Time, bool) {
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(DateLayout, dateText)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day returns the event's calendar day as midnight UTC.
// Returns false if the event is nil or its date cannot be parsed.
func (e *Event) Day() (time.Time, bool) {
	if e == nil {
		return time.Time{}, false
	}
	return ParseDate(e.Date)
}

// HasValidDate reports whether the event date is a single YYYY-MM-DD day
func (e *Event) HasValidDate() bool {
	_, ok := e.Day()
	return ok
}

// Today returns the calendar day of t as observed in loc, as midnight UTC so
// it compares directly with Day. A nil loc means time.Local.
func Today(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
