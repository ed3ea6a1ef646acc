package filter_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/pfrederiksen/campus-events/internal/event"
	"github.com/pfrederiksen/campus-events/internal/filter"
	"github.com/pfrederiksen/campus-events/internal/locality"
	"github.com/pfrederiksen/campus-events/internal/search"
)

var loc = time.FixedZone("PDT", -7*60*60)

func ids(events []*event.Event) []string {
	out := make([]string, 0, len(events))
	for _, evt := range events {
		out = append(out, evt.ID)
	}
	return out
}

func sampleEvents() []*event.Event {
	return []*event.Event{
		{
			ID:       "1",
			Title:    "Cal Baseball at Stanford",
			Date:     "2024-06-05",
			Location: "Stanford, CA",
			Tags:     []string{"Sports"},
		},
		{
			ID:          "2",
			Title:       "AI Policy Lecture",
			Organizer:   "Goldman School of Public Policy",
			Date:        "2024-06-11",
			Location:    "Berkeley, CA",
			Description: "How governments should regulate frontier models.",
			Tags:        []string{"Academic"},
		},
		{
			ID:          "3",
			Title:       "Student Gallery Opening",
			Organizer:   "Worth Ryder Gallery",
			Date:        "2024-06-09",
			Location:    "Kroeber Hall, Berkeley",
			Description: "Paintings and prints from the graduating class.",
			Tags:        []string{"Arts"},
		},
	}
}

// TestIntegration runs the full pipeline on a small batch
func TestIntegration(t *testing.T) {
	p := filter.NewPipeline(filter.WithLocation(loc))
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)
	events := sampleEvents()

	t.Run("Search with away game in batch", func(t *testing.T) {
		f := filter.Filter{Category: filter.AllCategories, DateRange: filter.RangeUpcoming, Search: "ai"}

		got := ids(p.Apply(events, f, now))
		if !reflect.DeepEqual(got, []string{"2"}) {
			t.Errorf("Apply() = %v, want [2]", got)
		}
	})

	t.Run("Default filter hides only the away game", func(t *testing.T) {
		got := ids(p.Apply(events, filter.DefaultFilter(), now))
		if !reflect.DeepEqual(got, []string{"2", "3"}) {
			t.Errorf("Apply() = %v, want [2 3]", got)
		}
	})

	t.Run("Week window", func(t *testing.T) {
		f := filter.DefaultFilter()
		f.DateRange = filter.RangeWeek

		got := ids(p.Apply(events, f, now))
		if !reflect.DeepEqual(got, []string{"2"}) {
			t.Errorf("Apply() = %v, want [2]", got)
		}
	})

	t.Run("Category", func(t *testing.T) {
		f := filter.DefaultFilter()
		f.Category = "Arts"

		got := ids(p.Apply(events, f, now))
		if !reflect.DeepEqual(got, []string{"3"}) {
			t.Errorf("Apply() = %v, want [3]", got)
		}
	})

	t.Run("No results is not an error", func(t *testing.T) {
		f := filter.DefaultFilter()
		f.Search = "quidditch"

		got := p.Apply(events, f, now)
		if got == nil || len(got) != 0 {
			t.Errorf("Apply() = %#v, want empty non-nil slice", got)
		}
	})
}

func TestPipeline_HomeGameSuppression(t *testing.T) {
	p := filter.NewPipeline(filter.WithLocation(loc))
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	away := &event.Event{ID: "away", Title: "Volleyball", Date: "2024-06-12", Location: "Stanford, CA", Tags: []string{"Sports"}}
	home := &event.Event{ID: "home", Title: "Volleyball", Date: "2024-06-12", Location: "Haas Pavilion, Berkeley, CA", Tags: []string{"Sports"}}

	if p.Matches(away, filter.DefaultFilter(), now) {
		t.Error("Matches(away game) = true, want false")
	}
	if !p.Matches(home, filter.DefaultFilter(), now) {
		t.Error("Matches(home game) = false, want true")
	}
}

func TestPipeline_OrderPreservedAndIdempotent(t *testing.T) {
	p := filter.NewPipeline(filter.WithLocation(loc))
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	events := []*event.Event{
		{ID: "e", Title: "Jazz Night", Date: "2024-06-14", Tags: []string{"Arts"}},
		{ID: "a", Title: "Machine Learning Reading Group", Date: "2024-06-11", Tags: []string{"Science & Tech"}},
		{ID: "d", Title: "Orchestra Concert", Date: "2024-06-12", Tags: []string{"Arts"}},
		{ID: "b", Title: "Deep Learning Workshop", Date: "2024-06-20", Tags: []string{"Science & Tech"}},
		{ID: "c", Title: "Chamber Music", Date: "2024-06-10", Tags: []string{"Arts"}},
	}

	filters := []filter.Filter{
		filter.DefaultFilter(),
		{Category: "Arts"},
		{Search: "music"},
		{Search: "ml"},
		{DateRange: filter.RangeWeek},
		{Category: "Arts", DateRange: filter.RangeWeek, Search: "concert"},
	}

	for _, f := range filters {
		t.Run(f.String(), func(t *testing.T) {
			once := p.Apply(events, f, now)
			twice := p.Apply(once, f, now)
			if !reflect.DeepEqual(ids(once), ids(twice)) {
				t.Errorf("Apply(Apply()) = %v, want %v", ids(twice), ids(once))
			}

			// Output must be a subsequence of the input.
			pos := 0
			for _, evt := range once {
				for pos < len(events) && events[pos] != evt {
					pos++
				}
				if pos == len(events) {
					t.Fatalf("Apply() = %v is not in input order", ids(once))
				}
				pos++
			}
		})
	}
}

func TestPipeline_DoesNotMutateInput(t *testing.T) {
	p := filter.NewPipeline(filter.WithLocation(loc))
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	events := sampleEvents()
	before := ids(events)
	firstTags := append([]string(nil), events[0].Tags...)

	_ = p.Apply(events, filter.Filter{Category: "Sports", Search: "Baseball"}, now)

	if !reflect.DeepEqual(ids(events), before) {
		t.Errorf("input order changed to %v", ids(events))
	}
	if !reflect.DeepEqual(events[0].Tags, firstTags) {
		t.Errorf("input tags changed to %v", events[0].Tags)
	}
}

func TestPipeline_MalformedEventsFailClosed(t *testing.T) {
	p := filter.NewPipeline(filter.WithLocation(loc))
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	events := []*event.Event{
		nil,
		{ID: "no-date", Title: "Mystery Mixer", Tags: []string{"Student Life"}},
		{ID: "bad-date", Title: "Ongoing Exhibit", Date: "ongoing", Tags: []string{"Arts"}},
		{ID: "empty"},
		{ID: "ok", Title: "Welcome Week BBQ", Date: "2024-06-10", Tags: []string{"Student Life"}},
	}

	t.Run("upcoming keeps everything but nil", func(t *testing.T) {
		got := ids(p.Apply(events, filter.DefaultFilter(), now))
		want := []string{"no-date", "bad-date", "empty", "ok"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Apply() = %v, want %v", got, want)
		}
	})

	t.Run("today drops bad dates", func(t *testing.T) {
		got := ids(p.Apply(events, filter.Filter{DateRange: filter.RangeToday}, now))
		if !reflect.DeepEqual(got, []string{"ok"}) {
			t.Errorf("Apply() = %v, want [ok]", got)
		}
	})

	t.Run("category drops untagged", func(t *testing.T) {
		got := ids(p.Apply(events, filter.Filter{Category: "Student Life"}, now))
		if !reflect.DeepEqual(got, []string{"no-date", "ok"}) {
			t.Errorf("Apply() = %v, want [no-date ok]", got)
		}
	})
}

func TestPipeline_InjectedConfiguration(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)
	events := []*event.Event{
		{ID: "1", Title: "Giants Game", Date: "2024-06-12", Location: "Oracle Park", Tags: []string{"Sports"}},
		{ID: "2", Title: "Pickup Hoops", Date: "2024-06-12", Location: "Haas Pavilion", Tags: []string{"Sports"}},
		{ID: "3", Title: "Robotics Demo", Date: "2024-06-12", Tags: []string{"Science & Technology"}},
	}

	p := filter.NewPipeline(
		filter.WithLocation(loc),
		filter.WithAllowlist(locality.NewAllowlist([]string{"oracle park"})),
		filter.WithVocabulary(search.NewVocabulary(map[string][]string{"robots": {"robotics"}}, nil)),
		filter.WithCategoryMatcher(filter.StrictCategory),
	)

	got := ids(p.Apply(events, filter.DefaultFilter(), now))
	if !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("Apply() with custom allowlist = %v, want [1 3]", got)
	}

	got = ids(p.Apply(events, filter.Filter{Search: "robots"}, now))
	if !reflect.DeepEqual(got, []string{"3"}) {
		t.Errorf("Apply() with custom vocabulary = %v, want [3]", got)
	}

	got = ids(p.Apply(events, filter.Filter{Category: "Science & Tech"}, now))
	if len(got) != 0 {
		t.Errorf("Apply() with strict category = %v, want none", got)
	}
}
