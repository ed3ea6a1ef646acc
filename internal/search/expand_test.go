package search

import (
	"reflect"
	"testing"
)

func fixtureVocabulary() *Vocabulary {
	return NewVocabulary(map[string][]string{
		"ai":               {"artificial intelligence", "machine learning", "ml"},
		"ml":               {"machine learning", "deep learning"},
		"machine learning": {"ml", "deep learning"},
		"art":              {"exhibit", "gallery"},
	}, []string{"ai", "ml"})
}

func TestVocabulary_Expand(t *testing.T) {
	vocab := fixtureVocabulary()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "empty query",
			query: "",
			want:  []string{""},
		},
		{
			name:  "whitespace only",
			query: "   ",
			want:  []string{""},
		},
		{
			name:  "no vocabulary hit",
			query: "Chess Club",
			want:  []string{"chess club"},
		},
		{
			name:  "exact key is normalized",
			query: "  ML ",
			want:  []string{"ml", "machine learning", "deep learning"},
		},
		{
			name:  "multi-word key on whole query",
			query: "Machine Learning",
			want:  []string{"machine learning", "ml", "deep learning"},
		},
		{
			name:  "multi-word key does not fire on partial query",
			query: "machine learning workshop",
			want:  []string{"machine learning workshop"},
		},
		{
			name:  "single-word key fires on a word",
			query: "ai ethics",
			want:  []string{"ai ethics", "artificial intelligence", "machine learning", "ml"},
		},
		{
			name:  "key does not fire on substring of a word",
			query: "smart campus",
			want:  []string{"smart campus"},
		},
		{
			name:  "several keys deduplicate",
			query: "ai ml",
			want:  []string{"ai ml", "artificial intelligence", "machine learning", "ml", "deep learning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vocab.Expand(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestNewVocabulary_CopiesInput(t *testing.T) {
	synonyms := map[string][]string{"film": {"movie"}}
	vocab := NewVocabulary(synonyms, nil)

	synonyms["film"][0] = "changed"
	synonyms["dance"] = []string{"ballet"}

	if got := vocab.Synonyms("film"); !reflect.DeepEqual(got, []string{"movie"}) {
		t.Errorf("Synonyms(film) = %q, want [movie]", got)
	}
	if got := vocab.Synonyms("dance"); got != nil {
		t.Errorf("Synonyms(dance) = %q, want nil", got)
	}
}

func TestDefaultVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()

	terms := vocab.Expand("ai")
	for _, want := range []string{"ai", "artificial intelligence", "machine learning", "ml", "deep learning", "neural network"} {
		if !contains(terms, want) {
			t.Errorf("Expand(ai) missing %q, got %q", want, terms)
		}
	}

	for _, token := range []string{"ai", "ml", "ar", "vr", "it", "cs"} {
		if !vocab.IsWholeWord(token) {
			t.Errorf("IsWholeWord(%q) = false, want true", token)
		}
	}
	if vocab.IsWholeWord("music") {
		t.Error("IsWholeWord(music) = true, want false")
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
