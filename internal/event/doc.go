// Package event provides the campus event data model.
//
// An Event is one discovered happening as published in the daily snapshot. A
// Batch is the full set of events, their grounding sources and the time the
// snapshot was produced. Batches are loaded once and treated as read-only.
package event
