package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/campus-events/internal/calendar"
	"github.com/pfrederiksen/campus-events/internal/event"
	"github.com/pfrederiksen/campus-events/internal/filter"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// Valid reports whether f is a known format
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatICS:
		return true
	}
	return false
}

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt   time.Time      `json:"checked_at"`
	Filter      filter.Filter  `json:"filter"`
	Events      []*event.Event `json:"events"`
	EventCount  int            `json:"event_count"`
	TotalCount  int            `json:"total_count"`
	LastUpdated time.Time      `json:"last_updated"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	case FormatICS:
		_, err := io.WriteString(w, calendar.GenerateICS(result.Events, result.CheckedAt))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if verbose {
		fmt.Fprintf(w, "%s\n\n", result.Filter.String())
	}

	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for _, evt := range result.Events {
		line := fmt.Sprintf("%s  %s", evt.Date, evt.Title)
		if tag := evt.PrimaryTag(); tag != "" {
			line += fmt.Sprintf(" [%s]", tag)
		}
		fmt.Fprintln(w, line)

		var details []string
		if evt.Time != "" {
			details = append(details, evt.Time)
		}
		if evt.Location != "" {
			details = append(details, evt.Location)
		}
		if len(details) > 0 {
			fmt.Fprintf(w, "     %s\n", strings.Join(details, " @ "))
		}
		if evt.URL != "" {
			fmt.Fprintf(w, "     %s\n", evt.URL)
		}
		if verbose {
			fmt.Fprintf(w, "     ID: %s\n", evt.ID)
			if evt.Organizer != "" {
				fmt.Fprintf(w, "     Organizer: %s\n", evt.Organizer)
			}
			if len(evt.Tags) > 1 {
				fmt.Fprintf(w, "     Tags: %s\n", strings.Join(evt.Tags, ", "))
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d of %d events\n", result.EventCount, result.TotalCount)
	return nil
}
