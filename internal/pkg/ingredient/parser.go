// Package ingredient derives candidate ingredient sets from free-text
// ingredient lists and trace tags. Parsing is a naive delimiter split;
// anything smarter belongs in an upstream enrichment pipeline.
package ingredient

import (
	"sort"
	"strings"
)

// ParseList splits a comma-separated ingredient text into lower-cased,
// trimmed names. A nil or blank text yields an empty set.
func ParseList(text *string) []string {
	if text == nil {
		return nil
	}
	var names []string
	for _, part := range strings.Split(*text, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CandidateSet unions the parsed ingredient names with the lower-cased
// trace tags. The result is deduplicated and sorted so downstream graph
// queries are deterministic.
func CandidateSet(ingredientsText *string, tracesTags []string) []string {
	seen := make(map[string]struct{})
	for _, name := range ParseList(ingredientsText) {
		seen[name] = struct{}{}
	}
	for _, tag := range tracesTags {
		name := strings.ToLower(strings.TrimSpace(tag))
		if name != "" {
			seen[name] = struct{}{}
		}
	}

	candidates := make([]string, 0, len(seen))
	for name := range seen {
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)
	return candidates
}
