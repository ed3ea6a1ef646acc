package search

import (
	"regexp"
	"sort"
	"strings"
)

// Vocabulary is an immutable search vocabulary.
// It is safe for concurrent use.
type Vocabulary struct {
	synonyms  map[string][]string
	keys      []string // sorted synonym keys, for deterministic expansion
	wholeWord map[string]*regexp.Regexp
}

// NewVocabulary builds a vocabulary from a synonym table and a list of
// whole-word-only tokens. Keys, terms and tokens are lowercased and trimmed;
// the inputs are copied so later changes to them have no effect.
func NewVocabulary(synonyms map[string][]string, wholeWord []string) *Vocabulary {
	v := &Vocabulary{
		synonyms:  make(map[string][]string, len(synonyms)),
		wholeWord: make(map[string]*regexp.Regexp, len(wholeWord)),
	}

	for key, related := range synonyms {
		key = normalize(key)
		if key == "" {
			continue
		}
		terms := make([]string, 0, len(related))
		for _, term := range related {
			if term = normalize(term); term != "" {
				terms = append(terms, term)
			}
		}
		v.synonyms[key] = append(v.synonyms[key], terms...)
	}

	v.keys = make([]string, 0, len(v.synonyms))
	for key := range v.synonyms {
		v.keys = append(v.keys, key)
	}
	sort.Strings(v.keys)

	for _, token := range wholeWord {
		token = normalize(token)
		if token == "" {
			continue
		}
		v.wholeWord[token] = wholeWordPattern(token)
	}

	return v
}

// wholeWordPattern matches token only where the neighbouring characters are
// not ASCII word characters. Unlike \b this also holds for tokens that start
// or end with punctuation, such as "c++" or "r&d".
func wholeWordPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9_])` + regexp.QuoteMeta(token) + `(?:[^a-z0-9_]|$)`)
}

// Synonyms returns a copy of the related terms for key, or nil
func (v *Vocabulary) Synonyms(key string) []string {
	related, ok := v.synonyms[normalize(key)]
	if !ok {
		return nil
	}
	out := make([]string, len(related))
	copy(out, related)
	return out
}

// IsWholeWord reports whether term only matches on word boundaries
func (v *Vocabulary) IsWholeWord(term string) bool {
	_, ok := v.wholeWord[normalize(term)]
	return ok
}

// Keys returns the sorted synonym keys
func (v *Vocabulary) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DefaultSynonyms returns the built-in campus search vocabulary.
// Each call returns a fresh map.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"ai":                      {"artificial intelligence", "machine learning", "ml", "deep learning", "neural network"},
		"artificial intelligence": {"ai", "machine learning", "ml", "deep learning", "neural network"},
		"ml":                      {"machine learning", "artificial intelligence", "ai", "deep learning"},
		"machine learning":        {"ml", "ai", "artificial intelligence", "deep learning"},
		"cs":                      {"computer science", "eecs", "programming", "coding", "software"},
		"computer science":        {"cs", "eecs", "programming", "coding", "software"},
		"coding":                  {"programming", "hackathon", "software", "developer"},
		"hackathon":               {"hack", "coding", "programming", "build"},
		"startup":                 {"entrepreneurship", "founder", "venture", "pitch", "skydeck"},
		"entrepreneurship":        {"startup", "founder", "venture", "pitch"},
		"career":                  {"job", "internship", "recruiting", "networking", "resume"},
		"job":                     {"career", "internship", "recruiting", "hiring"},
		"internship":              {"career", "job", "recruiting"},
		"music":                   {"concert", "band", "orchestra", "choir", "jazz", "recital"},
		"concert":                 {"music", "band", "orchestra", "performance"},
		"art":                     {"arts", "exhibit", "exhibition", "gallery", "museum"},
		"film":                    {"movie", "screening", "cinema"},
		"movie":                   {"film", "screening", "cinema"},
		"theater":                 {"theatre", "play", "drama", "performance"},
		"dance":                   {"performance", "ballet", "choreography"},
		"football":                {"cal football", "memorial stadium", "golden bears"},
		"basketball":              {"hoops", "haas pavilion"},
		"game":                    {"match", "vs", "versus"},
		"sports":                  {"athletics", "game", "match", "golden bears"},
		"food":                    {"free food", "pizza", "snacks", "lunch", "dinner", "boba"},
		"free food":               {"food", "pizza", "snacks", "lunch"},
		"party":                   {"social", "mixer", "celebration"},
		"climate":                 {"sustainability", "environment", "energy", "clean energy"},
		"sustainability":          {"climate", "environment", "green"},
		"health":                  {"wellness", "mental health", "fitness", "wellbeing"},
		"wellness":                {"health", "mental health", "meditation", "yoga", "fitness"},
		"vr":                      {"virtual reality", "xr", "ar", "augmented reality"},
		"ar":                      {"augmented reality", "xr", "vr", "virtual reality"},
		"it":                      {"information technology", "tech support"},
		"lecture":                 {"talk", "seminar", "colloquium", "speaker"},
		"talk":                    {"lecture", "seminar", "panel", "speaker"},
		"workshop":                {"training", "hands-on", "tutorial", "session"},
		"research":                {"lab", "study", "symposium", "poster session"},
		"volunteer":               {"community service", "service", "outreach"},
	}
}

// DefaultWholeWord returns the built-in short tokens that only match whole words
func DefaultWholeWord() []string {
	return []string{"ai", "ml", "ar", "vr", "xr", "it", "cs", "ui", "ux", "vs"}
}

// DefaultVocabulary returns a vocabulary built from the built-in tables
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(DefaultSynonyms(), DefaultWholeWord())
}
