// Package snapshot loads the published event snapshot.
//
// A snapshot is a JSON document with events, grounding sources and a
// lastUpdated timestamp. It can be read from a file, standard input, or an
// http(s) URL. When the URL serves the client page instead of the raw JSON,
// the snapshot is extracted from the page's inline script tag.
//
// Loading is all-or-nothing and never retried: any failure returns an error
// wrapping ErrLoad and no partial batch.
package snapshot
