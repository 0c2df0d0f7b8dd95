// Package classify turns raw posts into annotated ones: keyword
// matching, hazard categorization and sentiment scoring.
package classify

import "strings"

// FindMatches returns every vocabulary term contained in text,
// case-insensitively, in vocabulary order. Vocabulary entries are
// unique so no deduplication is needed. Empty text or no hits yield
// an empty slice, never nil-vs-error distinctions.
func FindMatches(text string, vocab []string) []string {
	matches := []string{}
	if text == "" {
		return matches
	}

	lower := strings.ToLower(text)
	for _, term := range vocab {
		if strings.Contains(lower, strings.ToLower(term)) {
			matches = append(matches, term)
		}
	}
	return matches
}
