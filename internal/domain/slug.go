package domain

import "strings"

// Slugify converts a category name to its URL-friendly form:
//   - converts to lowercase
//   - replaces "&" with "and"
//   - collapses every run of non-alphanumeric characters into one hyphen
//   - removes leading/trailing hyphens
//
// The slug is the spelling category filters accept alongside the raw name.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "&", "and")

	var b strings.Builder
	b.Grow(len(text))
	prevHyphen := false
	for _, r := range text {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		// Collapse the run; never start the slug with a hyphen.
		if !prevHyphen && b.Len() > 0 {
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
