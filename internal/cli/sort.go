package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/campus-events/internal/event"
)

// SortOrder represents the available display orders
type SortOrder string

const (
	SortNone    SortOrder = "none"
	SortByDate  SortOrder = "date"
	SortByTitle SortOrder = "title"
)

// Valid reports whether o is a known sort order
func (o SortOrder) Valid() bool {
	switch o {
	case SortNone, SortByDate, SortByTitle:
		return true
	}
	return false
}

// sortEvents returns the events in display order. The input is never
// reordered; SortNone keeps the snapshot order.
func sortEvents(events []*event.Event, sortOrder SortOrder) []*event.Event {
	sorted := make([]*event.Event, len(events))
	copy(sorted, events)

	switch sortOrder {
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return compareByDate(sorted[i], sorted[j])
		})
	case SortByTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			ti, tj := strings.ToLower(sorted[i].Title), strings.ToLower(sorted[j].Title)
			if ti != tj {
				return ti < tj
			}
			// If titles are equal, sort by date
			return compareByDate(sorted[i], sorted[j])
		})
	}

	return sorted
}

// compareByDate compares two events by their date
// Returns true if event i should come before event j
func compareByDate(i, j *event.Event) bool {
	dateI, okI := i.Day()
	dateJ, okJ := j.Day()

	// If only one date is valid, put the valid one first
	switch {
	case okI && okJ:
		return dateI.Before(dateJ)
	case okI:
		return true
	default:
		return false
	}
}
