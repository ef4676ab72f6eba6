package mapping

import (
	"strings"

	"github.com/campusconnect/portal-bff/internal/domain"
)

const maxSynthesizedTags = 5

// SynthesizeTags derives display tags for documents the backend shipped
// without any: lowercased subject words longer than three characters,
// then the resource's type, then its department. First occurrence wins
// on duplicates and the result is capped at five.
func SynthesizeTags(subject, typ, department string) []string {
	tags := make([]string, 0, maxSynthesizedTags)
	seen := make(map[string]bool)

	add := func(t string) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || t == strings.ToLower(domain.NA) || seen[t] || len(tags) >= maxSynthesizedTags {
			return
		}
		seen[t] = true
		tags = append(tags, t)
	}

	for _, w := range strings.Fields(subject) {
		if len(w) > 3 {
			add(w)
		}
	}
	add(typ)
	add(department)

	return tags
}
