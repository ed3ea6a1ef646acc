// Package cli implements the command-line interface for campus-events.
//
// The cli package provides the Cobra-based command tree: listing the events
// that match a category, date range and search query; inspecting search
// expansion; and showing the snapshot's categories and grounding sources.
// It coordinates the config, snapshot and filter packages and renders
// results as text, JSON or iCalendar.
package cli
