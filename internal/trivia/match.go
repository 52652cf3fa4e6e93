// Package trivia implements the memory quiz: free-text answers checked with a
// forgiving matcher.
package trivia

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// minContained is the shortest string accepted as a substring match.
const minContained = 3

// minTypoLen is the shortest answer that gets typo tolerance.
const minTypoLen = 5

// Matcher decides whether a typed answer counts as correct.
type Matcher struct {
	// MaxTypos is the Levenshtein distance tolerated for answers of
	// minTypoLen or more runes. Zero disables typo tolerance.
	MaxTypos int
}

// Normalize trims and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match reports whether input matches answer or one of its synonyms.
func (m Matcher) Match(input, answer string, synonyms []string) bool {
	user := Normalize(input)
	want := Normalize(answer)
	if user == "" || want == "" {
		return false
	}
	if user == want {
		return true
	}
	if strings.Contains(want, user) && utf8.RuneCountInString(user) >= minContained {
		return true
	}
	if strings.Contains(user, want) && utf8.RuneCountInString(want) >= minContained {
		return true
	}
	normalized := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		normalized = append(normalized, Normalize(s))
	}
	if slices.Contains(normalized, user) {
		return true
	}
	if m.MaxTypos > 0 {
		for _, candidate := range append([]string{want}, normalized...) {
			if m.closeEnough(user, candidate) {
				return true
			}
		}
	}
	return false
}

func (m Matcher) closeEnough(user, candidate string) bool {
	if utf8.RuneCountInString(candidate) < minTypoLen {
		return false
	}
	return levenshtein.ComputeDistance(user, candidate) <= m.MaxTypos
}
