package search

import "strings"

// Expand returns the normalized query plus the related terms of every
// vocabulary key equal to the whole query or to one of its words.
//
// Multi-word keys only fire on an exact whole-query match. Single-word keys
// fire on an exact word match, never on a substring of a word ("art" does not
// fire for "smart"). The result has no duplicates; the query comes first,
// followed by expansions in sorted key order.
//
// An empty query expands to [""]; callers must not match with it.
func (v *Vocabulary) Expand(query string) []string {
	query = normalize(query)

	words := make(map[string]bool)
	for _, w := range strings.Fields(query) {
		words[w] = true
	}

	seen := map[string]bool{query: true}
	terms := []string{query}

	for _, key := range v.keys {
		if key != query && !words[key] {
			continue
		}
		for _, term := range v.synonyms[key] {
			if !seen[term] {
				seen[term] = true
				terms = append(terms, term)
			}
		}
	}

	return terms
}
