package search

import (
	"strings"

	"github.com/pfrederiksen/campus-events/internal/event"
)

const haystackSeparator = " | "

// Haystack builds the lowercase text searched for an event: title,
// description, organizer and every tag.
func Haystack(evt *event.Event) string {
	if evt == nil {
		return ""
	}

	parts := make([]string, 0, 3+len(evt.Tags))
	parts = append(parts, evt.Title, evt.Description, evt.Organizer)
	parts = append(parts, evt.Tags...)
	return strings.ToLower(strings.Join(parts, haystackSeparator))
}

// Matches reports whether any term is found in the event's haystack.
// Whole-word tokens must be bounded by non-word characters or the string
// edges; every other term matches as a plain substring. Empty terms never
// match, and a nil event matches nothing.
func (v *Vocabulary) Matches(evt *event.Event, terms []string) bool {
	if evt == nil {
		return false
	}

	haystack := Haystack(evt)
	for _, term := range terms {
		term = normalize(term)
		if term == "" {
			continue
		}
		if re, ok := v.wholeWord[term]; ok {
			if re.MatchString(haystack) {
				return true
			}
			continue
		}
		if strings.Contains(haystack, term) {
			return true
		}
	}

	return false
}

// Search expands query and matches the event against the result.
// A blank query applies no search restriction and always passes.
func (v *Vocabulary) Search(evt *event.Event, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return v.Matches(evt, v.Expand(query))
}
