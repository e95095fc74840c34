package domain

import (
	"sort"
	"strings"
)

// SearchQuery is the structured form of a free-text search string.
type SearchQuery struct {
	// TitleSubstring is matched case-insensitively against post titles.
	TitleSubstring string

	// Tags is the normalized set of required tags, ascending.
	Tags []string
}

// ParseSearch splits a raw search string into a title substring and a set of
// required tags. Tokens prefixed with '#' become tags; everything else is
// rejoined, in order, into the title substring. A bare '#' is dropped. The
// function is total: any input, including the empty string, yields a valid
// query.
func ParseSearch(raw string) SearchQuery {
	var tags, titleWords []string

	for _, w := range strings.Fields(raw) {
		if strings.HasPrefix(w, "#") {
			if len(w) == 1 {
				continue
			}
			tags = append(tags, w[1:])
		} else {
			titleWords = append(titleWords, w)
		}
	}

	return SearchQuery{
		TitleSubstring: strings.Join(titleWords, " "),
		Tags:           NormalizeTags(tags),
	}
}

// NormalizeTags turns an arbitrary list of tag strings into canonical form:
// trimmed, lower-cased, with empty entries dropped, deduplicated and sorted
// ascending. A nil input yields an empty slice.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))

	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}

	sort.Strings(normalized)
	return normalized
}
