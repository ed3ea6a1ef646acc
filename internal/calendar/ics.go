// Package calendar exports campus events as an iCalendar (RFC 5545) feed.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/campus-events/internal/event"
)

const (
	prodID    = "-//Campus Events//campus-events//EN"
	uidDomain = "campus-events"
	dateValue = "20060102"
)

// GenerateICS builds one VCALENDAR with an all-day VEVENT per event.
// Events whose date cannot be parsed are skipped. stamp is written as DTSTAMP.
func GenerateICS(events []*event.Event, stamp time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:" + prodID + "\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, evt := range events {
		writeEvent(&ics, evt, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, evt *event.Event, stamp time.Time) {
	day, ok := evt.Day()
	if !ok {
		return
	}

	ics.WriteString("BEGIN:VEVENT\r\n")

	uid := evt.ID
	if uid == "" {
		uid = day.Format(dateValue) + "-" + slug(evt.Title)
	}
	fmt.Fprintf(ics, "UID:%s@%s\r\n", escapeICS(uid), uidDomain)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", formatICSTime(stamp))

	// All-day: DTEND is exclusive
	fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", day.Format(dateValue))
	fmt.Fprintf(ics, "DTEND;VALUE=DATE:%s\r\n", day.AddDate(0, 0, 1).Format(dateValue))

	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(evt.Title))

	var desc []string
	if evt.Time != "" {
		desc = append(desc, "Time: "+evt.Time)
	}
	if evt.Organizer != "" {
		desc = append(desc, "Organizer: "+evt.Organizer)
	}
	if evt.Description != "" {
		desc = append(desc, evt.Description)
	}
	if len(desc) > 0 {
		fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(strings.Join(desc, "\n\n")))
	}

	if evt.Location != "" {
		fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(evt.Location))
	}
	if len(evt.Tags) > 0 {
		escaped := make([]string, len(evt.Tags))
		for i, tag := range evt.Tags {
			escaped[i] = escapeICS(tag)
		}
		fmt.Fprintf(ics, "CATEGORIES:%s\r\n", strings.Join(escaped, ","))
	}
	if evt.URL != "" {
		fmt.Fprintf(ics, "URL:%s\r\n", evt.URL)
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes text values per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "-"):
			b.WriteByte('-')
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
