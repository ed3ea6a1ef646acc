package filter

import (
	"strings"

	"github.com/pfrederiksen/campus-events/internal/event"
)

// CategoryMatcher decides whether an event belongs to a category
type CategoryMatcher func(evt *event.Event, category string) bool

// LooseCategory matches the wildcard, an exact tag, or any tag containing the
// category case-insensitively. The substring rule tolerates label drift such
// as "Science & Tech" against "Science & Technology".
// An empty category is treated as the wildcard.
func LooseCategory(evt *event.Event, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	if evt == nil {
		return false
	}

	needle := strings.ToLower(category)
	for _, tag := range evt.Tags {
		if tag == category || strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// StrictCategory matches the wildcard or an exact tag only
func StrictCategory(evt *event.Event, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	if evt == nil {
		return false
	}

	for _, tag := range evt.Tags {
		if tag == category {
			return true
		}
	}
	return false
}
