// Package locality decides whether a sports listing is a Berkeley home game.
//
// The check is a heuristic over the free-text location: a sports event is
// local when its location contains one of a fixed set of campus venue
// fragments. Everything that is not a sports event passes untouched.
package locality

import "strings"

const sportsMarker = "sport"

// Allowlist is an immutable set of lowercase location fragments
type Allowlist struct {
	fragments []string
}

// NewAllowlist builds an allowlist from location fragments.
// Fragments are lowercased but not trimmed, so "cal " keeps its trailing space.
func NewAllowlist(fragments []string) *Allowlist {
	a := &Allowlist{fragments: make([]string, 0, len(fragments))}
	for _, f := range fragments {
		f = strings.ToLower(f)
		if strings.TrimSpace(f) == "" {
			continue
		}
		a.fragments = append(a.fragments, f)
	}
	return a
}

// Fragments returns a copy of the allowlisted fragments
func (a *Allowlist) Fragments() []string {
	out := make([]string, len(a.fragments))
	copy(out, a.fragments)
	return out
}

// IsSports reports whether any tag contains "sport", case-insensitively
func IsSports(tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), sportsMarker) {
			return true
		}
	}
	return false
}

// IsLocal reports whether an event should be shown by the locality check.
// Non-sports events always pass. Sports events pass only when the location
// contains an allowlisted fragment; otherwise they are treated as away games.
// Events with no tags are not sports events.
func (a *Allowlist) IsLocal(tags []string, location string) bool {
	if !IsSports(tags) {
		return true
	}

	location = strings.ToLower(location)
	for _, f := range a.fragments {
		if strings.Contains(location, f) {
			return true
		}
	}
	return false
}

// DefaultVenues returns the built-in Berkeley venue fragments
func DefaultVenues() []string {
	return []string{
		"berkeley",
		"cal ", // trailing space keeps "california" and "calvin" out
		"memorial stadium",
		"haas pavilion",
		"evans diamond",
		"edwards stadium",
		"goldman field",
		"spieker aquatics",
		"witter rugby field",
		"hearst gym",
		"recreational sports facility",
		"levine-fricke field",
		"maxwell family field",
		"strawberry canyon",
		"kleeberger field",
		"zellerbach",
		"sproul plaza",
	}
}

// DefaultAllowlist returns an allowlist of the built-in venues
func DefaultAllowlist() *Allowlist {
	return NewAllowlist(DefaultVenues())
}
