package classify

import (
	"strings"

	"github.com/spacesedan/tidewatch/internal/vocabulary"
)

// CategoryUnknown is returned when a post matched no keywords at all.
// Posts that matched keywords which map to no specific category fall
// into "general" instead, so the two cases stay distinguishable.
const CategoryUnknown = "unknown"

// CategoryGeneral is the catch-all for matched keywords without a
// more specific category.
const CategoryGeneral = "general"

// Categorize maps matched keywords to a single hazard category,
// scanning categories in fixed priority order and returning the first
// category whose term list intersects the matches. The intersection is
// a substring test: a matched keyword that contains a category term
// counts as belonging to it.
func Categorize(matched []string) string {
	if len(matched) == 0 {
		return CategoryUnknown
	}

	lowered := make([]string, len(matched))
	for i, kw := range matched {
		lowered[i] = strings.ToLower(kw)
	}

	for _, category := range vocabulary.CategoryPriority {
		for _, term := range vocabulary.CategoryToKeywords[category] {
			term = strings.ToLower(term)
			for _, kw := range lowered {
				if strings.Contains(kw, term) {
					return category
				}
			}
		}
	}

	return CategoryGeneral
}
