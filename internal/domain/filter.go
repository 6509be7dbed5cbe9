package domain

import "strings"

// Filter narrows a fetched vocabulary sequence. The zero value matches
// every row. Matching never errors: an unknown level or category simply
// matches nothing.
type Filter struct {
	Level         string
	Category      string
	SubCategories []string
}

// Matches reports whether a row passes every set filter field.
// Level compares case-insensitively. Category accepts either the raw
// category name (case-insensitive) or its slug. Sub-categories are a
// case-insensitive membership test.
func (f Filter) Matches(r Record) bool {
	if f.Level != "" && !strings.EqualFold(r[ColCEFRLevel], f.Level) {
		return false
	}

	if f.Category != "" {
		cat := r[ColCategory]
		if !strings.EqualFold(cat, f.Category) && Slugify(cat) != strings.ToLower(f.Category) {
			return false
		}
	}

	if len(f.SubCategories) > 0 && !containsFold(f.SubCategories, r[ColSubCategory]) {
		return false
	}

	return true
}

// Apply returns the rows passing the filter, preserving sheet order.
// The input slice is not modified.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
