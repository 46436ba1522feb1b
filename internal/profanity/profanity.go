package profanity

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Matcher is a word-list profanity classifier. It satisfies the
// service.Classifier interface and matches whole words case-insensitively.
type Matcher struct {
	words map[string]struct{}
}

// NewMatcher creates a matcher from a word list
func NewMatcher(words []string) *Matcher {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Matcher{words: set}
}

// ContainsDisallowed reports whether any word of the text is on the list
func (m *Matcher) ContainsDisallowed(text string) bool {
	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, ok := m.words[token]; ok {
			return true
		}
	}
	return false
}
