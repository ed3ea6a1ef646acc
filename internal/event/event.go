package event

import (
	"encoding/json"
	"time"
)

// Event represents a single campus event from the published snapshot
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Organizer   string   `json:"organizer"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // display only, never parsed
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
}

// PrimaryTag returns the first tag, used as the display tag.
// Returns "" when the event has no tags.
func (e *Event) PrimaryTag() string {
	if e == nil || len(e.Tags) == 0 {
		return ""
	}
	return e.Tags[0]
}

// GroundingSource is a citation backing the batch as a whole
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Batch is the full set of events loaded for a session
type Batch struct {
	Events      []*Event
	Sources     []GroundingSource
	LastUpdated time.Time
}

// batchJSON mirrors the snapshot wire format, where lastUpdated is
// milliseconds since the Unix epoch.
type batchJSON struct {
	Events      []*Event          `json:"events"`
	Sources     []GroundingSource `json:"sources"`
	LastUpdated int64             `json:"lastUpdated"`
}

// MarshalJSON encodes the batch in the snapshot wire format
func (b *Batch) MarshalJSON() ([]byte, error) {
	raw := batchJSON{
		Events:  b.Events,
		Sources: b.Sources,
	}
	if raw.Events == nil {
		raw.Events = []*Event{}
	}
	if raw.Sources == nil {
		raw.Sources = []GroundingSource{}
	}
	if !b.LastUpdated.IsZero() {
		raw.LastUpdated = b.LastUpdated.UnixMilli()
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes the snapshot wire format
func (b *Batch) UnmarshalJSON(data []byte) error {
	var raw batchJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.Events = raw.Events
	b.Sources = raw.Sources
	b.LastUpdated = time.Time{}
	if raw.LastUpdated != 0 {
		b.LastUpdated = time.UnixMilli(raw.LastUpdated)
	}
	return nil
}
