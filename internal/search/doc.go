// Package search implements synonym-aware free-text search over events.
//
// A Vocabulary maps canonical terms to related terms and names the short,
// ambiguity-prone tokens that may only match as whole words. Expand turns a
// query into the set of terms to look for, and Matches checks those terms
// against an event's title, description, organizer and tags.
//
// Example usage:
//
//	vocab := search.DefaultVocabulary()
//	terms := vocab.Expand("ml")
//	if vocab.Matches(evt, terms) {
//	    // show evt
//	}
package search
