package filter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDateRange is returned for date range names outside DateRanges
var ErrUnknownDateRange = errors.New("unknown date range")

// ParseDateRange parses a date range name.
//
// Supported values (case-insensitive): "upcoming", "today", "week", "month",
// "weekend". "this week" and "this-week" are accepted for "week"; "all" and
// the empty string mean "upcoming".
func ParseDateRange(input string) (DateRange, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	switch normalized {
	case "", "all":
		return RangeUpcoming, nil
	case "this week", "this-week":
		return RangeWeek, nil
	}

	r := DateRange(normalized)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q (use %s)", ErrUnknownDateRange, input, rangeNames())
	}
	return r, nil
}

// ParseCategory resolves user input against a category vocabulary,
// case-insensitively. Input that matches no known category is returned
// trimmed but otherwise unchanged, since the loose predicate tolerates
// labels outside the vocabulary.
func ParseCategory(input string, categories []string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return AllCategories
	}

	for _, c := range categories {
		if strings.EqualFold(c, input) {
			return c
		}
	}
	return input
}

func normalizedQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func rangeNames() string {
	names := make([]string, len(DateRanges))
	for i, r := range DateRanges {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
