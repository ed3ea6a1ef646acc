package filter

import (
	"time"

	"github.com/pfrederiksen/campus-events/internal/event"
	"github.com/pfrederiksen/campus-events/internal/locality"
	"github.com/pfrederiksen/campus-events/internal/search"
)

// Pipeline applies a Filter to a batch of events.
// A Pipeline is immutable once built and safe for concurrent use.
type Pipeline struct {
	vocab    *search.Vocabulary
	allow    *locality.Allowlist
	category CategoryMatcher
	loc      *time.Location
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithVocabulary sets the search vocabulary
func WithVocabulary(v *search.Vocabulary) Option {
	return func(p *Pipeline) {
		if v != nil {
			p.vocab = v
		}
	}
}

// WithAllowlist sets the home venue allowlist
func WithAllowlist(a *locality.Allowlist) Option {
	return func(p *Pipeline) {
		if a != nil {
			p.allow = a
		}
	}
}

// WithCategoryMatcher swaps the category predicate
func WithCategoryMatcher(m CategoryMatcher) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.category = m
		}
	}
}

// WithLocation sets the time zone used for calendar days
func WithLocation(loc *time.Location) Option {
	return func(p *Pipeline) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// NewPipeline creates a pipeline with the built-in vocabulary, venue
// allowlist, loose category matching and the system time zone, then applies
// opts.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		vocab:    search.DefaultVocabulary(),
		allow:    locality.DefaultAllowlist(),
		category: LooseCategory,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns the time zone used for calendar days
func (p *Pipeline) Location() *time.Location {
	return p.loc
}

// Vocabulary returns the search vocabulary
func (p *Pipeline) Vocabulary() *search.Vocabulary {
	return p.vocab
}

// Matches checks if an event passes all four predicates.
// A nil event never matches; a missing field makes only its own predicate fail.
func (p *Pipeline) Matches(evt *event.Event, f Filter, now time.Time) bool {
	return p.matches(evt, f, now, p.searchTerms(f))
}

// Apply returns the events that match f, in input order.
// The input slice and its events are never modified; the result is always a
// new, non-nil slice.
func (p *Pipeline) Apply(events []*event.Event, f Filter, now time.Time) []*event.Event {
	terms := p.searchTerms(f)

	filtered := make([]*event.Event, 0, len(events))
	for _, evt := range events {
		if p.matches(evt, f, now, terms) {
			filtered = append(filtered, evt)
		}
	}

	return filtered
}

// searchTerms expands the query once per pass. Returns nil for a blank
// query, which disables the search predicate.
func (p *Pipeline) searchTerms(f Filter) []string {
	query := normalizedQuery(f.Search)
	if query == "" {
		return nil
	}
	return p.vocab.Expand(query)
}

func (p *Pipeline) matches(evt *event.Event, f Filter, now time.Time, terms []string) bool {
	if evt == nil {
		return false
	}

	if !p.category(evt, f.Category) {
		return false
	}

	if !InWindow(evt, f.DateRange, now, p.loc) {
		return false
	}

	if terms != nil && !p.vocab.Matches(evt, terms) {
		return false
	}

	return p.allow.IsLocal(evt.Tags, evt.Location)
}
