// Package filter reduces a batch of campus events to the subset to display.
//
// Every event is checked against four independent predicates, all of which
// must pass:
//   - Category: "All", an exact tag, or a tag containing the category (case-insensitive)
//   - Date range: upcoming (no restriction), today, week, month or weekend
//   - Search: synonym-expanded free text over title, description, organizer and tags
//   - Locality: sports events must be at a Berkeley venue
//
// Filtering is pure: the input batch is never modified, output keeps the
// input order, and the result depends only on the batch, the filter and the
// reference time passed in.
//
// Example usage:
//
//	p := filter.NewPipeline()
//	f := filter.DefaultFilter()
//	f.Search = "ai"
//	visible := p.Apply(batch.Events, f, time.Now())
package filter

import (
	"fmt"
	"strings"
)

// AllCategories is the category wildcard
const AllCategories = "All"

// DefaultCategories is the built-in category vocabulary, wildcard first
var DefaultCategories = []string{
	AllCategories,
	"Academic",
	"Arts",
	"Sports",
	"Science & Tech",
	"Student Life",
}

// Filter is the user's current filter state
type Filter struct {
	Category  string    `json:"category"`
	DateRange DateRange `json:"date_range"`
	Search    string    `json:"search_query"`
}

// DefaultFilter returns the filter state a session starts with:
// all categories, upcoming events, no search.
func DefaultFilter() Filter {
	return Filter{
		Category:  AllCategories,
		DateRange: RangeUpcoming,
	}
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would pass every event on its own; the locality
// check still applies.
func (f Filter) IsEmpty() bool {
	return (f.Category == "" || f.Category == AllCategories) &&
		(f.DateRange == "" || f.DateRange == RangeUpcoming) &&
		strings.TrimSpace(f.Search) == ""
}

// String returns a human-readable description of the active filter criteria.
// Returns "No active filters" if the filter is empty.
// Format: "Category: Arts | Date: week | Search: jazz"
func (f Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if f.Category != "" && f.Category != AllCategories {
		parts = append(parts, fmt.Sprintf("Category: %s", f.Category))
	}

	if f.DateRange != "" && f.DateRange != RangeUpcoming {
		parts = append(parts, fmt.Sprintf("Date: %s", f.DateRange))
	}

	if q := strings.TrimSpace(f.Search); q != "" {
		parts = append(parts, fmt.Sprintf("Search: %s", q))
	}

	return strings.Join(parts, " | ")
}
