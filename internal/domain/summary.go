package domain

import "sort"

// CategorySummary aggregates one category across the fetched rows.
type CategorySummary struct {
	Name          string
	Slug          string
	WordCount     int
	Subcategories []string
}

// DistinctValues returns the distinct non-empty values of one column, in the
// order the rows first mention them.
func DistinctValues(records []Record, column string) []string {
	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0, len(records))
	for _, r := range records {
		v := r[column]
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// SummarizeCategories groups rows by category and reports each category's
// word count and its sorted distinct non-empty subcategories. Rows without a
// category are skipped. Summaries come back sorted by category name.
func SummarizeCategories(records []Record) []CategorySummary {
	counts := make(map[string]int)
	subcats := make(map[string]map[string]struct{})

	for _, r := range records {
		cat := r[ColCategory]
		if cat == "" {
			continue
		}
		counts[cat]++
		if sub := r[ColSubCategory]; sub != "" {
			if subcats[cat] == nil {
				subcats[cat] = make(map[string]struct{})
			}
			subcats[cat][sub] = struct{}{}
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]CategorySummary, 0, len(names))
	for _, name := range names {
		subs := make([]string, 0, len(subcats[name]))
		for sub := range subcats[name] {
			subs = append(subs, sub)
		}
		sort.Strings(subs)
		summaries = append(summaries, CategorySummary{
			Name:          name,
			Slug:          Slugify(name),
			WordCount:     counts[name],
			Subcategories: subs,
		})
	}
	return summaries
}
